package logger

import "testing"

func TestInit_ValidLevels(t *testing.T) {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		t.Run(level, func(t *testing.T) {
			l := New()
			if err := l.Init(level); err != nil {
				t.Fatalf("Init(%q) returned error: %v", level, err)
			}
			if l.Log == nil {
				t.Fatal("Init left Log nil")
			}
		})
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	l := New()
	if err := l.Init("verbose"); err == nil {
		t.Fatal("Init(\"verbose\") did not return error")
	}
}
