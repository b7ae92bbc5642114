package response

import "github.com/gin-gonic/gin"

var (
	ParamError            = gin.H{"code": 10001, "message": "param error"}
	ParamErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10001, "message": message}
	}

	InternalError            = gin.H{"code": 10002, "message": "internal error"}
	InternalErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10002, "message": message}
	}

	BusyError = gin.H{"code": 10003, "message": "another action is still running"}

	NotFound = gin.H{"code": 10004, "message": "not found"}

	SuccessWithData = func(data interface{}) gin.H {
		return gin.H{"code": 0, "data": data}
	}
)
