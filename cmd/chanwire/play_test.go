package main

import "testing"

func TestParseScenario(t *testing.T) {
	data := []byte(`
steps:
  - subscribe: app/users
  - listen_once: app/boot
  - stream:
      channel: app/users
      payload: hello
  - broadcast:
      channel: app/users
      payload: 7
  - silence: app
  - silence: ""
  - wait: 50ms
`)

	s, err := parseScenario(data)
	if err != nil {
		t.Fatalf("parseScenario() failed: %v", err)
	}
	if len(s.Steps) != 7 {
		t.Fatalf("parsed %d steps, want 7", len(s.Steps))
	}

	if s.Steps[0].Subscribe != "app/users" {
		t.Errorf("step 1 subscribe = %q, want %q", s.Steps[0].Subscribe, "app/users")
	}
	if s.Steps[1].ListenOnce != "app/boot" {
		t.Errorf("step 2 listen_once = %q, want %q", s.Steps[1].ListenOnce, "app/boot")
	}
	if s.Steps[2].Stream == nil || s.Steps[2].Stream.Payload != "hello" {
		t.Errorf("step 3 stream = %+v, want payload hello", s.Steps[2].Stream)
	}
	if s.Steps[3].Broadcast == nil || s.Steps[3].Broadcast.Payload != 7 {
		t.Errorf("step 4 broadcast = %+v, want payload 7", s.Steps[3].Broadcast)
	}
	if s.Steps[4].Silence == nil || *s.Steps[4].Silence != "app" {
		t.Errorf("step 5 silence = %v, want app", s.Steps[4].Silence)
	}
	if s.Steps[5].Silence == nil || *s.Steps[5].Silence != "" {
		t.Errorf("step 6 silence = %v, want empty path (whole tree)", s.Steps[5].Silence)
	}
	if s.Steps[6].Wait != "50ms" {
		t.Errorf("step 7 wait = %q, want %q", s.Steps[6].Wait, "50ms")
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	if _, err := parseScenario([]byte("steps: [")); err == nil {
		t.Error("parseScenario() with malformed YAML succeeded, want error")
	}
}
