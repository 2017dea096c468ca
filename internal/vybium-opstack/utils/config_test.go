package utils

import "testing"

// TestDefaultConfig tests the DefaultConfig function
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if config.InitTraceLength < MinInitTraceLength {
		t.Error("InitTraceLength should be at least the minimum")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

// TestConfigValidate tests the Validate method
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		expectErr bool
	}{
		{
			name:      "valid default",
			modify:    func(c *Config) {},
			expectErr: false,
		},
		{
			name:      "trace length below minimum",
			modify:    func(c *Config) { c.InitTraceLength = 1 },
			expectErr: true,
		},
		{
			name:      "non power of two rejected when required",
			modify:    func(c *Config) { c.InitTraceLength = 100 },
			expectErr: true,
		},
		{
			name: "non power of two allowed when not required",
			modify: func(c *Config) {
				c.InitTraceLength = 100
				c.PowerOfTwoTrace = false
			},
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.expectErr && err == nil {
				t.Error("Validate() should have failed")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

// TestConfigBuilders tests the fluent setters and Clone
func TestConfigBuilders(t *testing.T) {
	config := DefaultConfig().
		WithInitTraceLength(256).
		WithPowerOfTwoTrace(false)

	if config.InitTraceLength != 256 {
		t.Errorf("InitTraceLength = %d, want 256", config.InitTraceLength)
	}
	if config.PowerOfTwoTrace {
		t.Error("PowerOfTwoTrace should be false")
	}

	clone := config.Clone()
	clone.InitTraceLength = 512
	if config.InitTraceLength != 256 {
		t.Error("mutating a clone should not affect the original")
	}
}

// TestPowerOfTwoHelpers tests IsPowerOfTwo and NextPowerOfTwo
func TestPowerOfTwoHelpers(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -4, 3, 100} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}

	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 100: 128, 1024: 1024}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}
