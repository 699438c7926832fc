// Package catalog defines the static document type catalog along with the
// supported language and tone enumerations. The catalog is immutable and
// shared process-wide; descriptor field lists are informational hints for
// clients and are never enforced during generation.
package catalog

// Category identifies a group of related document types.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// TypeDescriptor describes a single generatable document type.
// Fields lists the supplemental details a client may want to collect
// for this type; they are advisory only.
type TypeDescriptor struct {
	Key         string   `json:"key"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

var categories = []Category{
	{Key: "academic", Name: "Academic & Educational"},
	{Key: "corporate", Name: "Corporate & Business"},
	{Key: "government", Name: "Government & Public Service"},
	{Key: "legal", Name: "Court & Judicial"},
	{Key: "general", Name: "General & Personal"},
}

var types = []TypeDescriptor{
	{
		Key:         "University/College Admission Application",
		Category:    "academic",
		Description: "Application for admission to university or college programs",
		Fields:      []string{"program_name", "academic_year", "previous_qualifications"},
	},
	{
		Key:         "Scholarship Application",
		Category:    "academic",
		Description: "Application for financial aid and scholarships",
		Fields:      []string{"scholarship_name", "financial_need", "academic_achievements"},
	},
	{
		Key:         "Bonafide Certificate Application",
		Category:    "academic",
		Description: "Request for student bonafide certificate",
		Fields:      []string{"student_id", "academic_year", "purpose_of_certificate"},
	},
	{
		Key:         "Migration Certificate Application",
		Category:    "academic",
		Description: "Application for migration certificate for transferring institutions",
		Fields:      []string{"current_institution", "new_institution", "course_details"},
	},
	{
		Key:         "Character Certificate Application",
		Category:    "academic",
		Description: "Request for character certificate from educational institution",
		Fields:      []string{"institution_name", "academic_period", "purpose"},
	},
	{
		Key:         "Leave Application",
		Category:    "academic",
		Description: "Application for leave from school, college or work",
		Fields:      []string{"leave_type", "leave_duration", "reason_for_leave"},
	},
	{
		Key:         "Job Application",
		Category:    "corporate",
		Description: "Application for employment position",
		Fields:      []string{"position_title", "company_name", "qualifications", "experience"},
	},
	{
		Key:         "Business Proposal",
		Category:    "corporate",
		Description: "Proposal for business partnership or venture",
		Fields:      []string{"business_type", "proposal_details", "partnership_terms"},
	},
	{
		Key:         "Vendor Registration Application",
		Category:    "corporate",
		Description: "Application to register as vendor or supplier",
		Fields:      []string{"company_details", "services_offered", "registration_requirements"},
	},
	{
		Key:         "Tender Application",
		Category:    "corporate",
		Description: "Application for participating in business tenders",
		Fields:      []string{"tender_number", "project_details", "company_capabilities"},
	},
	{
		Key:         "Franchise Application",
		Category:    "corporate",
		Description: "Application for franchise opportunity",
		Fields:      []string{"franchise_brand", "location_details", "investment_capacity"},
	},
	{
		Key:         "RTI Application",
		Category:    "government",
		Description: "Right to Information application to government departments",
		Fields:      []string{"department_name", "information_requested", "purpose_of_request"},
	},
	{
		Key:         "Aadhaar Card Application",
		Category:    "government",
		Description: "Application for Aadhaar card enrollment or correction",
		Fields:      []string{"application_type", "demographic_details", "documents_submitted"},
	},
	{
		Key:         "PAN Card Application",
		Category:    "government",
		Description: "Application for PAN card or corrections",
		Fields:      []string{"application_type", "personal_details", "supporting_documents"},
	},
	{
		Key:         "Passport Application",
		Category:    "government",
		Description: "Application for passport issuance or renewal",
		Fields:      []string{"passport_type", "travel_purpose", "supporting_documents"},
	},
	{
		Key:         "Driving License Application",
		Category:    "government",
		Description: "Application for driving license (new, renewal, or duplicate)",
		Fields:      []string{"license_type", "vehicle_category", "test_center_preference"},
	},
	{
		Key:         "Voter ID Application",
		Category:    "government",
		Description: "Application for voter ID card registration or correction",
		Fields:      []string{"constituency_details", "address_proof", "application_type"},
	},
	{
		Key:         "Income Certificate Application",
		Category:    "government",
		Description: "Application for income certificate from revenue department",
		Fields:      []string{"family_income", "purpose_of_certificate", "occupation_details"},
	},
	{
		Key:         "Caste Certificate Application",
		Category:    "government",
		Description: "Application for caste certificate",
		Fields:      []string{"caste_category", "family_details", "purpose_of_certificate"},
	},
	{
		Key:         "Domicile Certificate Application",
		Category:    "government",
		Description: "Application for domicile/residence certificate",
		Fields:      []string{"residence_duration", "address_details", "purpose_of_certificate"},
	},
	{
		Key:         "Bail Application",
		Category:    "legal",
		Description: "Application for bail in criminal proceedings",
		Fields:      []string{"case_number", "charges", "grounds_for_bail", "surety_details"},
	},
	{
		Key:         "Petition",
		Category:    "legal",
		Description: "General petition to court (writ, divorce, etc.)",
		Fields:      []string{"petition_type", "relief_sought", "facts_of_case", "legal_grounds"},
	},
	{
		Key:         "Application for Adjournment",
		Category:    "legal",
		Description: "Request for postponement of court hearing",
		Fields:      []string{"case_details", "reason_for_adjournment", "proposed_date"},
	},
	{
		Key:         "Application for Stay",
		Category:    "legal",
		Description: "Application for stay of proceedings or execution",
		Fields:      []string{"case_details", "order_to_stay", "grounds_for_stay"},
	},
	{
		Key:         "Caveat Application",
		Category:    "legal",
		Description: "Application to be heard before any order is passed",
		Fields:      []string{"case_nature", "interest_in_matter", "legal_basis"},
	},
	{
		Key:         "Complaint Letter",
		Category:    "general",
		Description: "Letter of complaint for services or products",
		Fields:      []string{"complaint_against", "incident_details", "resolution_sought"},
	},
	{
		Key:         "Request Letter",
		Category:    "general",
		Description: "General request letter for various purposes",
		Fields:      []string{"request_details", "justification", "expected_outcome"},
	},
	{
		Key:         "Resignation Letter",
		Category:    "general",
		Description: "Letter of resignation from job or position",
		Fields:      []string{"current_position", "last_working_day", "reason_for_resignation"},
	},
	{
		Key:         "Cover Letter",
		Category:    "general",
		Description: "Cover letter for job applications",
		Fields:      []string{"position_applied", "relevant_experience", "key_qualifications"},
	},
	{
		Key:         "Recommendation Letter",
		Category:    "general",
		Description: "Letter of recommendation for someone",
		Fields:      []string{"person_being_recommended", "relationship", "qualities_achievements"},
	},
	{
		Key:         "Invitation Letter",
		Category:    "general",
		Description: "Letter of invitation for events or visits",
		Fields:      []string{"event_details", "invitee_details", "purpose_of_invitation"},
	},
	{
		Key:         "Apology Letter",
		Category:    "general",
		Description: "Letter of apology for mistakes or misunderstandings",
		Fields:      []string{"incident_details", "acknowledgment_of_fault", "corrective_measures"},
	},
	{
		Key:         "Thank You Letter",
		Category:    "general",
		Description: "Letter expressing gratitude and appreciation",
		Fields:      []string{"reason_for_thanks", "specific_actions_appreciated", "future_relationship"},
	},
}

var typeIndex = func() map[string]*TypeDescriptor {
	idx := make(map[string]*TypeDescriptor, len(types))
	for i := range types {
		idx[types[i].Key] = &types[i]
	}
	return idx
}()

// Lookup returns the descriptor for the given document type key.
func Lookup(key string) (*TypeDescriptor, bool) {
	d, ok := typeIndex[key]
	return d, ok
}

// Types returns all document type descriptors in catalog order.
func Types() []TypeDescriptor {
	out := make([]TypeDescriptor, len(types))
	copy(out, types)
	return out
}

// Categories returns all categories in catalog order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByKey returns the category with the given key.
func CategoryByKey(key string) (*Category, bool) {
	for i := range categories {
		if categories[i].Key == key {
			return &categories[i], true
		}
	}
	return nil, false
}

// TypesByCategory returns the descriptors belonging to the given category key.
func TypesByCategory(key string) []TypeDescriptor {
	out := make([]TypeDescriptor, 0)
	for _, t := range types {
		if t.Category == key {
			out = append(out, t)
		}
	}
	return out
}
