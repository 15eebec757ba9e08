package nats

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("NATS_URL", "")
	t.Setenv("NATS_TOKEN", "")

	n := fromEnv()
	if n.Url != defaultURL {
		t.Errorf("url = %q, want %q", n.Url, defaultURL)
	}
	if n.Token != "" {
		t.Errorf("token = %q, want empty", n.Token)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("NATS_URL", "nats://broker.internal:4222")
	t.Setenv("NATS_TOKEN", "s3cret")

	n := fromEnv()
	if n.Url != "nats://broker.internal:4222" {
		t.Errorf("url = %q, want configured value", n.Url)
	}
	if n.Token != "s3cret" {
		t.Errorf("token = %q, want configured value", n.Token)
	}
}
