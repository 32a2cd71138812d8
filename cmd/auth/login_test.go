package auth

import "testing"

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "long token keeps last four",
			token: "abcdef123456",
			want:  "********3456",
		},
		{
			name:  "short token fully masked",
			token: "abcd",
			want:  "****",
		},
		{
			name:  "empty token",
			token: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskToken(tt.token); got != tt.want {
				t.Errorf("MaskToken() got = %v, want %v", got, tt.want)
			}
		})
	}
}
