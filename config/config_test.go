package config

import (
	"errors"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Config
		wantErr bool
	}{
		{
			"empty uses defaults",
			"",
			DefaultConfig(),
			false,
		},
		{
			"full config",
			"enable_logger = true\nbanner = \"HELLO\"\nshow_cursor = true\n",
			Config{EnableLogger: true, Banner: "HELLO", ShowCursor: true},
			false,
		},
		{
			"comments and blanks skipped",
			"# a comment\n\nbanner = \"X\"\n",
			Config{EnableLogger: false, Banner: "X", ShowCursor: false},
			false,
		},
		{
			"unknown keys ignored",
			"tabsize = 4\nbanner = \"Y\"\n",
			Config{EnableLogger: false, Banner: "Y", ShowCursor: false},
			false,
		},
		{
			"missing equals",
			"enable_logger\n",
			DefaultConfig(),
			true,
		},
		{
			"bad value",
			"enable_logger = maybe\n",
			DefaultConfig(),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("error %v is not a *ParseError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
