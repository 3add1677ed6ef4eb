package common

// Role là vai trò của người dùng trong hệ thống (tập đóng)
type Role string

const (
	RoleAdmin           Role = "admin"            // Quản trị viên
	RoleContentManager  Role = "content_manager"  // Người duyệt nội dung
	RoleContentProducer Role = "content_producer" // Người tạo nội dung
)

// ParseRole chuyển chuỗi thành Role, trả về false nếu không thuộc tập vai trò
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleContentManager, RoleContentProducer:
		return Role(s), true
	}
	return "", false
}

// IsValid kiểm tra vai trò có thuộc tập đóng không
func (r Role) IsValid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// CanApprove kiểm tra vai trò có quyền duyệt, từ chối và xuất bản nội dung không
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleContentManager
}

// CanAdminister kiểm tra vai trò có quyền quản trị hệ thống không
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}
