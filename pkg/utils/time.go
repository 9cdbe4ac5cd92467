// pkg/utils/time.go
package utils

import "time"

// Now คืนเวลาปัจจุบันแบบ RFC3339 สำหรับ payload ที่ส่งออกนอกระบบ
func Now() string {
	return time.Now().Format(time.RFC3339)
}
