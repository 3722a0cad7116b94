package cv

// UploadCVRequest - DTO for uploading a résumé document
type UploadCVRequest struct {
	Filename string `json:"filename" validate:"required"`
	Data     []byte `json:"-"`
}

// UploadCVResponse - parsed profile plus ATS analysis
type UploadCVResponse struct {
	Success  bool       `json:"success"`
	Filename string     `json:"filename"`
	Profile  *Profile   `json:"cv_data"`
	ATS      *ATSResult `json:"ats_result"`
}

// AnalyzeCVRequest - DTO for the analyze endpoint
type AnalyzeCVRequest struct {
	Filename string `json:"filename" validate:"required"`
	Data     []byte `json:"-"`
	JobTitle string `json:"job_title,omitempty"`
}

// AnalyzeCVResponse - ATS analysis plus improvement advice
type AnalyzeCVResponse struct {
	Success bool       `json:"success"`
	ATS     *ATSResult `json:"ats_result"`
	Advice  *Advice    `json:"advice"`
}
