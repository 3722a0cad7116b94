package kernel

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type UploadID string

func NewUploadID(id string) UploadID { return UploadID(id) }
func (u UploadID) String() string    { return string(u) }
func (u UploadID) IsEmpty() bool     { return string(u) == "" }

// JobKey identifies a posting across sources: the source name plus the
// source-assigned job id. Both parts may be empty for sources that do not
// assign ids.
type JobKey struct {
	Source string `json:"source"`
	JobID  string `json:"job_id"`
}

func (k JobKey) IsEmpty() bool { return k.Source == "" && k.JobID == "" }
