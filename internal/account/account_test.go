package account

import "testing"

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  A@Gmail.com "); got != "a@gmail.com" {
		t.Fatalf("NormalizeEmail() = %q, want %q", got, "a@gmail.com")
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "A@Gmail.com", want: true},
		{email: "  someone.else@gmail.com  ", want: true},
		{email: "x@yahoo.com", want: false},
		{email: "noat.com", want: false},
		{email: "@gmail.com", want: false},
		{email: "a@@gmail.com", want: false},
		{email: "a@gmail.com.evil", want: false},
		{email: "a@gmailcom", want: false},
		{email: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := ValidEmail(tt.email); got != tt.want {
				t.Fatalf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestCredentialsFor(t *testing.T) {
	if c, err := CredentialsFor("", 0); err != nil {
		t.Fatalf("default scheme: %v", err)
	} else if _, ok := c.(PlaintextCredentials); !ok {
		t.Fatalf("default scheme = %T, want PlaintextCredentials", c)
	}
	if _, err := CredentialsFor("bcrypt", 4); err != nil {
		t.Fatalf("bcrypt scheme: %v", err)
	}
	if _, err := CredentialsFor("bcrypt", 99); err == nil {
		t.Fatal("expected out of range cost error")
	}
	if _, err := CredentialsFor("md5", 0); err == nil {
		t.Fatal("expected unknown scheme error")
	}
}

func TestBcryptCredentialsRoundTrip(t *testing.T) {
	creds := BcryptCredentials{Cost: 4}
	stored, err := creds.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if stored == "secret" {
		t.Fatal("expected hashed password")
	}
	if !creds.Matches(stored, "secret") {
		t.Fatal("expected match")
	}
	if creds.Matches(stored, "Secret") {
		t.Fatal("expected mismatch")
	}
}

func TestPlaintextCredentials(t *testing.T) {
	var creds PlaintextCredentials
	stored, _ := creds.Hash("p")
	if stored != "p" {
		t.Fatalf("stored = %q, want as-is", stored)
	}
	if !creds.Matches("p", "p") || creds.Matches("p", "P") || creds.Matches("p", "") {
		t.Fatal("unexpected plaintext comparison result")
	}
}
