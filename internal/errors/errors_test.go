package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("boom"), ExitSystem),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	base := ErrInvalidBitDepth
	err := NewUserError(Wrap(base, "loading config"), "use 16 or 24")

	if !stderrors.Is(err, base) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should find *ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "use 16 or 24" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestConstructors(t *testing.T) {
	if got := NewSystemError(nil, "s").Code; got != ExitSystem {
		t.Errorf("NewSystemError Code = %d, want %d", got, ExitSystem)
	}
	if got := NewConfigError(ErrInvalidConfig).Code; got != ExitUser {
		t.Errorf("NewConfigError Code = %d, want %d", got, ExitUser)
	}
	if NewConfigError(ErrInvalidConfig).Suggestion == "" {
		t.Error("NewConfigError should carry a suggestion")
	}
}
