package constants

// Vai trò tài khoản
const (
	ROLE_ADMIN     = "ADMIN"
	ROLE_MANAGER   = "MANAGER"
	ROLE_SELLER    = "SELLER"
	ROLE_INSPECTOR = "INSPECTOR" // duyệt đơn online
)

var ROLE = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_SELLER, ROLE_INSPECTOR}

// Phương thức thanh toán
const (
	PAYMENT_CASH     = "Tiền mặt"
	PAYMENT_TRANSFER = "Chuyển khoản"
)

var PAYMENT_MEDIUMS = []string{PAYMENT_CASH, PAYMENT_TRANSFER}

// Kênh bán vé
const (
	CHANNEL_OFFLINE = "offline"
	CHANNEL_ONLINE  = "online"
)

// Trạng thái đơn online
const (
	ONLINE_ORDER_PENDING  = "PENDING"
	ONLINE_ORDER_VERIFIED = "VERIFIED"
	ONLINE_ORDER_REJECTED = "REJECTED"
	ONLINE_ORDER_EXPIRED  = "EXPIRED"
)

// Key lưu trong KV store (Redis)
const (
	KV_ORDER_DRAFT_PREFIX  = "vteam:draft:"        // + accountId
	KV_FORM_STATE_PREFIX   = "vteam:form:"         // + accountId
	KV_TICKET_COLOR_PREFIX = "vteam:ticket-color:" // + slug loại vé
)

// Thông báo lỗi
const (
	NOT_ADMIN                             = "Tài khoản không có quyền quản trị"
	ACCOUNT_NOT_PERMISSION                = "Tài khoản không có quyền thực hiện thao tác này"
	ACCOUNT_NOT_ACTIVE                    = "Tài khoản đã bị khoá"
	ERROR_PARSE_DATA_TO_LOCALS            = "Lỗi đọc dữ liệu từ context"
	ERROR_INTERNAL_ERROR                  = "Lỗi hệ thống, vui lòng thử lại"
	ERROR_INPUT                           = "Dữ liệu đầu vào không hợp lệ"
	ERROR_CREATE                          = "Tạo mới thất bại"
	ERROR_EDIT                            = "Cập nhật thất bại"
	DATA_INPUT_IS_NOT_NUMBER              = "Giá trị truyền vào không phải là số"
	NOT_FOUND_RECORDS                     = "Không tìm thấy dữ liệu"
	CAN_NOT_HASH_PASSWORD                 = "Không thể mã hoá mật khẩu"
	MISSING_LOGIN_INPUT                   = "Thiếu tên đăng nhập hoặc mật khẩu"
	INVALID_PASSWORD                      = "Mật khẩu không đúng"
	INVALID_USERNAME                      = "Tên đăng nhập không tồn tại"
	ROLE_NOT_EXISTS                       = "Vai trò không tồn tại"
	NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD = "Mật khẩu nhập lại không khớp"
	STUDENT_ID_EXISTS                     = "Học sinh đã có vé trong đơn"
	NOT_SCHOOL_STUDENT                    = "Không phải học sinh trong trường, vui lòng nhập thủ công"
	INVALID_HOMEROOM                      = "Lớp không hợp lệ!"
	MISSING_REQUIRED_FIELDS               = "Vui lòng điền đầy đủ thông tin bắt buộc"
	ORDER_SUBMIT_FAILED                   = "Gửi đơn hàng thất bại, đơn nháp được giữ nguyên"
)
