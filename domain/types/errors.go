// domain/types/errors.go
package types

import "errors"

// ข้อผิดพลาดหลักของ domain - handler แปลงเป็น HTTP status ด้วย errors.Is
var (
	// ErrAccessDenied - ผู้กระทำไม่ใช่เจ้าของ note หรือเงื่อนไขของ batch ไม่ผ่าน
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound - ไม่พบ note, version หรือ tag ที่อ้างถึง
	ErrNotFound = errors.New("not found")

	// ErrInvalidState - สถานะ lifecycle ไม่ตรงตามเงื่อนไขของ operation
	ErrInvalidState = errors.New("invalid state")
)

// ข้อผิดพลาดเฉพาะ entity (wrap ErrNotFound เพื่อให้ errors.Is ยังใช้ได้)
var (
	ErrNoteNotFound    = wrap("note not found", ErrNotFound)
	ErrVersionNotFound = wrap("version not found", ErrNotFound)
	ErrTagNotFound     = wrap("tag not found", ErrNotFound)
	ErrUserNotFound    = wrap("user not found", ErrNotFound)

	ErrNoteNotArchived = wrap("note is not archived", ErrInvalidState)
)

// ข้อผิดพลาดระดับ auth - handler map เป็น 401/409
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type wrappedError struct {
	msg  string
	base error
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.base }

func wrap(msg string, base error) error {
	return &wrappedError{msg: msg, base: base}
}
