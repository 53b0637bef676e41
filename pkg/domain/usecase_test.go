package domain

import (
	"errors"
	"testing"
)

func TestParseUseCase(t *testing.T) {
	t.Run("すべてのスラッグが往復できる", func(t *testing.T) {
		for _, u := range AllUseCases() {
			got, err := ParseUseCase(u.String())
			if err != nil {
				t.Fatalf("ParseUseCase(%q) returned error: %v", u.String(), err)
			}
			if got != u {
				t.Errorf("got %v, want %v", got, u)
			}
		}
	})

	t.Run("大文字や前後の空白は許容する", func(t *testing.T) {
		got, err := ParseUseCase("  Doc-To-App ")
		if err != nil || got != DocToApp {
			t.Errorf("got (%v, %v), want DocToApp", got, err)
		}
	})

	t.Run("未知の値は ErrInvalidInput", func(t *testing.T) {
		_, err := ParseUseCase("image-to-video")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestUseCase_Requirements(t *testing.T) {
	tests := []struct {
		useCase   UseCase
		wantImage bool
		wantText  bool
	}{
		{SingleImageToCode, true, false},
		{MultiImageToApp, true, false},
		{CodeRefactor, false, true},
		{DocToApp, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.useCase.String(), func(t *testing.T) {
			if got := tt.useCase.RequiresImage(); got != tt.wantImage {
				t.Errorf("RequiresImage() = %v, want %v", got, tt.wantImage)
			}
			if got := tt.useCase.RequiresText(); got != tt.wantText {
				t.Errorf("RequiresText() = %v, want %v", got, tt.wantText)
			}
		})
	}

	if UseCaseUnknown.String() != "unknown" {
		t.Errorf("unexpected slug for unknown use case: %s", UseCaseUnknown.String())
	}
}
