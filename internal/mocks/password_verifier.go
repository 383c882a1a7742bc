package mocks

import "errors"

// ErrPasswordMismatch is returned by the default Compare implementation when
// the fake hash does not match the plaintext.
var ErrPasswordMismatch = errors.New("mocks: password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier and
// auth.PasswordHasher without the cost of real bcrypt. The default hash is
// the reversible "hashed:<plaintext>" form that MockUserStore.Create also
// produces, so the two compose in handler tests.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
	HashFn    func(password string) (string, error)
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return ErrPasswordMismatch
	}
	return nil
}

// Hash implements the PasswordHasher interface.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}
