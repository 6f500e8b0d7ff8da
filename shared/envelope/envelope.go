package envelope

type ResultCode int

const (
	Success        ResultCode = 1
	Error          ResultCode = -99
	Exist          ResultCode = 2
	NotFound       ResultCode = -2
	DtoError       ResultCode = -3
	DataBaseError  ResultCode = -4
	DtoNotComplete ResultCode = -5
)

const (
	MsgServerBusy    = "server busy, try again later"
	MsgRequestFailed = "request failed: "
)

// Envelope is the uniform body of every API answer.
type Envelope struct {
	ResultCode ResultCode `json:"resultCode"`
	Msg        string     `json:"msg"`
	ResultData any        `json:"resultData"`
}

func New(code ResultCode, msg string, data any) Envelope {
	return Envelope{
		ResultCode: code,
		Msg:        msg,
		ResultData: data,
	}
}

// ServerBusy is the generic answer for storage faults and unmapped codes.
func ServerBusy() Envelope {
	return New(Error, MsgServerBusy, nil)
}

// RequestFailed is the client-side answer when a call never produced a usable response.
func RequestFailed(err error) Envelope {
	return New(Error, MsgRequestFailed+err.Error(), nil)
}

func (e Envelope) IsSuccess() bool {
	return e.ResultCode == Success
}

func (c ResultCode) String() string {
	switch c {
	case Success:
		return "success"
	case Error:
		return "error"
	case Exist:
		return "exist"
	case NotFound:
		return "not_found"
	case DtoError:
		return "dto_error"
	case DataBaseError:
		return "database_error"
	case DtoNotComplete:
		return "dto_not_complete"
	default:
		return "unknown"
	}
}
