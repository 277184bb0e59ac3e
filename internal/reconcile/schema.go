package reconcile

// Canonical spreadsheet column ordering. Columns map to record fields purely
// by position; header rows are never used for mapping. This ordering is an
// external contract with the exporting systems and must not be reordered.
const (
	colFullName = iota
	colGender
	colDateOfBirth
	colMobile
	colEmail
	colLinkedIn
	colFacebook
	colTwitter
	colInstagram
	colCity
	colState
	colLanguages
	colMaritalStatus
	colSector
	colCategory
	colProduct
	colChannel
	colDesignation
	colDepartment
	colCurrentCTC
	colExpectedCTC
	colNoticePeriod
	colTotalExperience
	colJobChangeStatus

	columnCount
)

// ColumnNames lists the canonical columns in positional order, for report
// output and operator tooling.
var ColumnNames = [columnCount]string{
	colFullName:        "full_name",
	colGender:          "gender",
	colDateOfBirth:     "date_of_birth",
	colMobile:          "mobile",
	colEmail:           "email",
	colLinkedIn:        "linkedin",
	colFacebook:        "facebook",
	colTwitter:         "twitter",
	colInstagram:       "instagram",
	colCity:            "city",
	colState:           "state",
	colLanguages:       "languages",
	colMaritalStatus:   "marital_status",
	colSector:          "sector",
	colCategory:        "category",
	colProduct:         "product",
	colChannel:         "channel",
	colDesignation:     "designation",
	colDepartment:      "department",
	colCurrentCTC:      "current_ctc",
	colExpectedCTC:     "expected_ctc",
	colNoticePeriod:    "notice_period",
	colTotalExperience: "total_experience",
	colJobChangeStatus: "job_change_status",
}
