package domain

// Domain is the closed set of prompt categories the engine understands.
// The set is fixed at build time; adding a member requires shipping new
// rule tables.
type Domain string

const (
	DomainSQL        Domain = "sql"
	DomainBranding   Domain = "branding"
	DomainCinema     Domain = "cinema"
	DomainSaaS       Domain = "saas"
	DomainDevOps     Domain = "devops"
	DomainGeneral    Domain = "general"
	DomainMobile     Domain = "mobile"
	DomainWeb        Domain = "web"
	DomainBackend    Domain = "backend"
	DomainFrontend   Domain = "frontend"
	DomainAI         Domain = "ai"
	DomainGaming     Domain = "gaming"
	DomainCrypto     Domain = "crypto"
	DomainEducation  Domain = "education"
	DomainHealthcare Domain = "healthcare"
	DomainFinance    Domain = "finance"
	DomainLegal      Domain = "legal"
)

// AllDomains returns every domain in declaration order. The order is
// load-bearing: classifier ties resolve to the earliest entry.
func AllDomains() []Domain {
	return []Domain{
		DomainSQL, DomainBranding, DomainCinema, DomainSaaS, DomainDevOps,
		DomainGeneral, DomainMobile, DomainWeb, DomainBackend, DomainFrontend,
		DomainAI, DomainGaming, DomainCrypto, DomainEducation,
		DomainHealthcare, DomainFinance, DomainLegal,
	}
}

// IsValid checks if the domain is a member of the closed set
func (d Domain) IsValid() bool {
	switch d {
	case DomainSQL, DomainBranding, DomainCinema, DomainSaaS, DomainDevOps,
		DomainGeneral, DomainMobile, DomainWeb, DomainBackend, DomainFrontend,
		DomainAI, DomainGaming, DomainCrypto, DomainEducation,
		DomainHealthcare, DomainFinance, DomainLegal:
		return true
	}
	return false
}

// ParseDomain parses a string into a Domain, reporting whether it is a
// member of the closed set
func ParseDomain(s string) (Domain, bool) {
	d := Domain(s)
	return d, d.IsValid()
}

// Template represents the structural shape imposed on refined output
type Template string

const (
	TemplateBasic          Template = "basic"
	TemplateChainOfThought Template = "chain-of-thought"
	TemplateFewShot        Template = "few-shot"
	TemplateRoleBased      Template = "role-based"
)

// IsValid checks if the template is valid
func (t Template) IsValid() bool {
	switch t {
	case TemplateBasic, TemplateChainOfThought, TemplateFewShot, TemplateRoleBased:
		return true
	}
	return false
}

// Severity represents the severity of a validation finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Rank returns the sort rank of the severity, highest first
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// FindingCategory represents the anti-pattern category of a finding
type FindingCategory string

const (
	CategoryVagueness       FindingCategory = "vagueness"
	CategoryPlaceholder     FindingCategory = "placeholder"
	CategoryContradiction   FindingCategory = "contradiction"
	CategoryMissingCriteria FindingCategory = "missing_criteria"
	CategoryAmbiguity       FindingCategory = "ambiguity"
	CategoryMissingField    FindingCategory = "missing_field"
)

// IsValid checks if the finding category is valid
func (c FindingCategory) IsValid() bool {
	switch c {
	case CategoryVagueness, CategoryPlaceholder, CategoryContradiction,
		CategoryMissingCriteria, CategoryAmbiguity, CategoryMissingField:
		return true
	}
	return false
}

// JobStatus represents the status of a background refinement job
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// IsValid checks if the job status is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusRunning, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// IsTerminal checks if the job status is terminal
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}
