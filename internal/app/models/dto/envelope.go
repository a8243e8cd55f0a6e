package dto

import "time"

// Envelope constants
const (
	APIVersion = "v1"

	StatusSuccess = "success"
	StatusFailure = "failure"

	ResponseCodeOK    = "OK"
	ResponseCodeError = "ERROR"
)

// Operation identifiers echoed in the envelope "id" field
const (
	OpCourseGetAll  = "api.course.getAll"
	OpCourseGetByID = "api.course.getById"
	OpCourseCreate  = "api.course.create"
	OpCourseUpdate  = "api.course.update"
	OpCoursePatch   = "api.course.patch"
	OpCourseDelete  = "api.course.delete"

	OpUnitCreate  = "api.unit.create"
	OpUnitGetAll  = "api.unit.getAll"
	OpUnitGetByID = "api.unit.getById"
	OpUnitUpdate  = "api.unit.update"
	OpUnitPatch   = "api.unit.patch"
	OpUnitDelete  = "api.unit.delete"

	OpError         = "api.error"
	OpErrorNotFound = "api.error.notfound"
)

// ResponseParams carries the correlation id and outcome of a request
type ResponseParams struct {
	MsgID    string `json:"msgid" example:"5f0c6a52-8d0e-4a55-bb7a-6ad1b0b0f1d4"`
	Status   string `json:"status" example:"success" enums:"success,failure"`
	Err      string `json:"err,omitempty" example:"VAL_001"`
	ErrMsg   string `json:"errmsg,omitempty" example:"name must not be blank"`
	ErrField string `json:"errfield,omitempty" example:"name"`
}

// APIResponse is the envelope wrapped around every response body
type APIResponse struct {
	ID           string         `json:"id" example:"api.course.create"`
	Ver          string         `json:"ver" example:"v1"`
	Ts           time.Time      `json:"ts" example:"2025-04-23T12:01:05.123Z"`
	Params       ResponseParams `json:"params"`
	ResponseCode string         `json:"responseCode" example:"OK"`
	Result       interface{}    `json:"result"`
}

// Result is the success payload: a human readable message plus optional data
type Result struct {
	Message string      `json:"message" example:"Course created successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(apiID, msgID, message string, data interface{}) APIResponse {
	return APIResponse{
		ID:  apiID,
		Ver: APIVersion,
		Ts:  time.Now().UTC(),
		Params: ResponseParams{
			MsgID:  msgID,
			Status: StatusSuccess,
		},
		ResponseCode: ResponseCodeOK,
		Result: Result{
			Message: message,
			Data:    data,
		},
	}
}

// NewFailureResponse builds a failure envelope; the result is always null
func NewFailureResponse(apiID, msgID string, detail *ErrorDetail) APIResponse {
	resp := APIResponse{
		ID:  apiID,
		Ver: APIVersion,
		Ts:  time.Now().UTC(),
		Params: ResponseParams{
			MsgID:  msgID,
			Status: StatusFailure,
		},
		ResponseCode: ResponseCodeError,
	}
	if detail != nil {
		resp.Params.Err = string(detail.Code)
		resp.Params.ErrMsg = detail.Message
		resp.Params.ErrField = detail.Field
	}
	return resp
}
