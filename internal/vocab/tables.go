package vocab

// Built-in vocabulary of the supplier enrichment template. The ingest
// table translates template headers into the document vocabulary; the
// egress table is a superset translating both the ingest vocabulary and
// the enrichment-only fields back to spreadsheet headers.

var ingestEntries = []Entry{
	{From: "Supplier Company", To: "companyName"},
	{From: "Supplier First Name", To: "firstName"},
	{From: "Supplier Last Name", To: "lastName"},
	{From: "Supplier Email", To: "emailAddress"},
	{From: "Supplier Phone", To: "phone"},
	{From: "Supplier Street", To: "companyStreet"},
	{From: "Supplier City", To: "companyCity"},
	{From: "Supplier State", To: "companyState"},
	{From: "Supplier Zip Code", To: "companyZipCode"},
	{From: "Supplier Country", To: "companyCountry"},
	{From: "Site Name", To: "siteName"},
	{From: "Site ID", To: "siteID"},
	{From: "Additional Contact Info", To: "additionalContactInfo"},
}

var egressEntries = []Entry{
	{From: "companyName", To: "Supplier Company"},
	{From: "companyStreet", To: "Supplier Street"},
	{From: "companyCity", To: "Supplier City"},
	{From: "companyState", To: "Supplier State"},
	{From: "companyZipCode", To: "Supplier Zip Code"},
	{From: "companyCountry", To: "Supplier Country"},
	{From: "firstName", To: "Supplier First Name"},
	{From: "lastName", To: "Supplier Last Name"},
	{From: "emailAddress", To: "Supplier Email"},
	{From: "phone", To: "Supplier Phone"},
	{From: "siteName", To: "Site Name"},
	{From: "siteID", To: "Site ID"},
	{From: "additionalContactInfo", To: "Additional Contact Info"},
	{From: "zi_c_name", To: "Zoominfo Company Name"},
	{From: "zi_c_company_id", To: "Zoominfo Company ID"},
	{From: "zi_c_company_name", To: "Company HQ Name"},
	{From: "zi_c_phone", To: "Company Phone"},
	{From: "zi_c_url", To: "Website"},
	{From: "zi_c_linkedin_url", To: "Company LinkedIn URL"},
	{From: "jobTitle", To: "Contact Job Title"},
	{From: "zi_c_naics6", To: "6-digit NAICS Code"},
	{From: "sectorTitle", To: "Sector Title"},
	{From: "primaryIndustry", To: "Primary Industry"},
	{From: "zi_c_employees", To: "Number of Employees"},
	{From: "zi_c_street", To: "Company Street"},
	{From: "zi_c_city", To: "Company City"},
	{From: "zi_c_state", To: "Company State"},
	{From: "zi_c_zip", To: "Company Zip Code"},
	{From: "zi_c_country", To: "Company Country"},
	{From: "zi_c_location_id", To: "Company Location ID"},
	{From: "needsContact", To: "Needs New Contact"},
	{From: "newContactFound", To: "New Contact Found"},
	{From: "personId", To: "Contact Person ID"},
	{From: "contactMatchCriteria", To: "Contact Match Criteria"},
	{From: "company_match_criteria", To: "Company Match Criteria"},
	{From: "enrichmentStatus", To: "Enrichment Status"},
	{From: "errorMessage", To: "Error Message"},
}

// defaultEntries are the enrichment placeholders injected into every
// record. enrichmentStatus starts as "Success"; the enrichment passes
// downgrade it per record when a lookup fails.
var defaultEntries = []Default{
	{Field: "zi_c_name"},
	{Field: "zi_c_company_id"},
	{Field: "jobTitle"},
	{Field: "zi_c_company_name"},
	{Field: "zi_c_phone"},
	{Field: "zi_c_url"},
	{Field: "zi_c_linkedin_url"},
	{Field: "zi_c_naics6"},
	{Field: "sectorTitle"},
	{Field: "primaryIndustry"},
	{Field: "zi_c_employees"},
	{Field: "zi_c_street"},
	{Field: "zi_c_city"},
	{Field: "zi_c_state"},
	{Field: "zi_c_zip"},
	{Field: "zi_c_country"},
	{Field: "zi_c_location_id"},
	{Field: "needsContact"},
	{Field: "newContactFound"},
	{Field: "personId"},
	{Field: "contactMatchCriteria"},
	{Field: "enrichmentStatus", Value: "Success"},
	{Field: "errorMessage"},
}

// BuiltIn returns the built-in vocabulary.
func BuiltIn() Vocabulary {
	return Vocabulary{
		Ingest:   NewTable(ingestEntries),
		Egress:   NewTable(egressEntries),
		Defaults: NewDefaultSet(defaultEntries),
	}
}
