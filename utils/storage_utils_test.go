package utils

import "testing"

func TestHostFromEndpoint(t *testing.T) {
	cases := []struct {
		endpoint string
		want     string
	}{
		{"https://object.pscloud.io", "object.pscloud.io"},
		{"https://object.pscloud.io/", "object.pscloud.io"},
		{"http://minio.internal:9000", "minio.internal:9000"},
		{"s3.eu-central-1.amazonaws.com", "s3.eu-central-1.amazonaws.com"},
	}

	for _, tc := range cases {
		if got := hostFromEndpoint(tc.endpoint); got != tc.want {
			t.Errorf("hostFromEndpoint(%q) = %q, want %q", tc.endpoint, got, tc.want)
		}
	}
}

func TestPublicURLUsesConfiguredEndpoint(t *testing.T) {
	s := NewStorage("key", "secret", "media", "us-east-1", "https://minio.internal:9000/")

	got := s.publicURL("avatars/x.png")
	want := "https://media.minio.internal:9000/avatars/x.png"
	if got != want {
		t.Errorf("publicURL = %q, want %q", got, want)
	}
}
