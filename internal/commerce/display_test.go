package commerce

import "testing"

func TestFormatPackageDisplay(t *testing.T) {
	tests := []struct {
		name        string
		regionLevel string
		tier        string
		services    []ServiceCount
		want        string
	}{
		{
			name:        "two services",
			regionLevel: "city",
			tier:        "Gold",
			services:    []ServiceCount{{"checkup", 2}, {"dental", 1}},
			want:        "CITY | Gold | checkup×2+dental×1",
		},
		{
			name:        "single service",
			regionLevel: "Province",
			tier:        "basic",
			services:    []ServiceCount{{"vision", 3}},
			want:        "PROVINCE | basic | vision×3",
		},
		{
			name:        "input order preserved",
			regionLevel: "national",
			tier:        "VIP",
			services:    []ServiceCount{{"zeta", 1}, {"alpha", 9}},
			want:        "NATIONAL | VIP | zeta×1+alpha×9",
		},
		{
			name:        "no services",
			regionLevel: "city",
			tier:        "Silver",
			services:    nil,
			want:        "CITY | Silver | ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPackageDisplay(tt.regionLevel, tt.tier, tt.services); got != tt.want {
				t.Errorf("FormatPackageDisplay(%q, %q, %v) = %q, want %q",
					tt.regionLevel, tt.tier, tt.services, got, tt.want)
			}
		})
	}
}
