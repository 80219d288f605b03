package commerce

import "testing"

func TestCanSubmitBinding(t *testing.T) {
	tests := []struct {
		name    string
		history []BindingStatus
		want    bool
	}{
		{"empty history", nil, true},
		{"only rejected", []BindingStatus{BindingRejected, BindingRejected}, true},
		{"pending only", []BindingStatus{BindingPending}, true},
		{"approved", []BindingStatus{BindingApproved}, false},
		{"approved then rejected", []BindingStatus{BindingApproved, BindingRejected}, false},
		{"rejected then approved", []BindingStatus{BindingRejected, BindingApproved}, false},
		{"approved buried in the middle", []BindingStatus{BindingRejected, BindingApproved, BindingRejected, BindingRejected}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSubmitBinding(tt.history); got != tt.want {
				t.Errorf("CanSubmitBinding(%v) = %v, want %v", tt.history, got, tt.want)
			}
		})
	}
}
