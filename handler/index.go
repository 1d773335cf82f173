package handler

import "vteam_ticket/helper"

// KV là store bền dùng chung cho đơn nháp, phiên form và màu loại vé.
var KV helper.KVStore = helper.NewRedisStore()
