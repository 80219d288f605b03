package commerce

import "testing"

func TestCanRefundUnredeemed(t *testing.T) {
	d := CanRefundUnredeemed(0)
	if !d.OK || d.ErrorCode != "" {
		t.Errorf("CanRefundUnredeemed(0) = %+v, want OK with no error code", d)
	}

	for count := 1; count <= 20; count++ {
		d := CanRefundUnredeemed(count)
		if d.OK {
			t.Errorf("CanRefundUnredeemed(%d).OK = true, want false", count)
		}
		if d.ErrorCode != CodeRefundNotAllowed {
			t.Errorf("CanRefundUnredeemed(%d).ErrorCode = %q, want %q", count, d.ErrorCode, CodeRefundNotAllowed)
		}
	}
}
