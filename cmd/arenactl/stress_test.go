package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStressCommand(t *testing.T) {
	tests := []struct {
		name        string
		ops         int
		seed        int64
		maxSize     int
		limit       int
		useFile     bool
		wantJSON    bool
		wantContain []string
	}{
		{
			name:        "memory arena",
			ops:         2000,
			seed:        1,
			maxSize:     512,
			limit:       4 << 20,
			wantContain: []string{"Stress run complete", "heap check", "ok"},
		},
		{
			name:        "small arena drains under pressure",
			ops:         5000,
			seed:        7,
			maxSize:     1024,
			limit:       256 << 10,
			wantContain: []string{"drains", "heap check", "ok"},
		},
		{
			name:     "json report",
			ops:      1000,
			seed:     3,
			maxSize:  256,
			limit:    4 << 20,
			wantJSON: true,
			wantContain: []string{
				`"consistent": true`,
				`"ops": 1000`,
			},
		},
		{
			name:        "file-backed arena",
			ops:         1000,
			seed:        5,
			maxSize:     256,
			limit:       1 << 20,
			useFile:     true,
			wantContain: []string{"heap check", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON
			stressOps = tt.ops
			stressSeed = tt.seed
			stressMaxSize = tt.maxSize
			stressLimit = tt.limit
			stressFile = ""
			if tt.useFile {
				stressFile = filepath.Join(t.TempDir(), "heap.arena")
			}

			output, err := captureOutput(t, runStress)
			if err != nil {
				t.Fatalf("runStress() error = %v\nOutput: %s", err, output)
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			if strings.Contains(output, "FAILED") {
				t.Errorf("heap check failed\nOutput: %s", output)
			}
		})
	}
}
