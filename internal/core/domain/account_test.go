package domain

import "testing"

func TestIdentityOf(t *testing.T) {
	a := &Account{ID: "1", Email: "a@x.com", PasswordHash: "hash", Name: "A"}

	id := IdentityOf(a)
	if id.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com, got %q", id.Email)
	}
	if !id.HasAuthority(AuthorityUser) {
		t.Fatalf("expected %s authority, got %v", AuthorityUser, id.Authorities)
	}
	if id.HasAuthority("ADMIN") {
		t.Fatalf("unexpected ADMIN authority")
	}
}
