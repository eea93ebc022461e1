package rules

import "github.com/promptforge/promptforge/internal/domain"

// builtinDomains returns the shipped rule tables in declaration order.
// Order matters: classifier ties resolve to the earliest table.
func builtinDomains() []DomainRules {
	return []DomainRules{
		{
			Domain:          domain.DomainSQL,
			Role:            "senior database engineer",
			DefaultTemplate: domain.TemplateChainOfThought,
			Keywords: []WeightedPattern{
				{Pattern: "sql", Weight: 3},
				{Pattern: "query", Weight: 2},
				{Pattern: "database", Weight: 2},
				{Pattern: "table", Weight: 1},
				{Pattern: "join", Weight: 1.5},
				{Pattern: "index", Weight: 1},
				{Pattern: "schema", Weight: 1.5},
				{Pattern: "select", Weight: 1},
				{Pattern: "postgres", Weight: 2},
				{Pattern: "mysql", Weight: 2},
			},
			Sections: []Section{
				{Name: "dialect", Heading: "Target dialect", Guidance: "Name the SQL dialect and version, for example PostgreSQL 16."},
				{Name: "schema", Heading: "Schema assumptions", Guidance: "List the tables, columns and relationships the query relies on."},
				{Name: "performance", Heading: "Performance constraints", Guidance: "State expected row counts, acceptable latency and required indexes."},
			},
			ExtendedSections: []Section{
				{Name: "edge_cases", Heading: "Edge cases", Guidance: "Cover NULL handling, empty result sets and duplicate rows."},
			},
			Checklist: []ChecklistItem{
				{Name: "dialect", Patterns: []string{"dialect", "postgresql", "mysql", "sqlite", "sql server"}},
				{Name: "schema", Patterns: []string{"schema", "column", "columns"}},
				{Name: "performance", Patterns: []string{"performance", "latency", "rows"}},
				{Name: "objective", Patterns: []string{"select", "insert", "update", "delete", "query", "retrieve"}},
			},
			Vocabulary: []string{
				"query", "index", "join", "transaction", "constraint", "view",
				"aggregate", "partition", "dialect", "normalization",
			},
			AntiPatterns: []AntiPattern{
				{Category: domain.CategoryMissingField, Severity: domain.SeverityWarning, Message: "no SQL dialect specified", Missing: []string{"dialect", "postgresql", "mysql", "sqlite", "sql server"}},
			},
		},
		{
			Domain:          domain.DomainBranding,
			Role:            "brand strategist",
			DefaultTemplate: domain.TemplateRoleBased,
			Keywords: []WeightedPattern{
				{Pattern: "brand", Weight: 3},
				{Pattern: "branding", Weight: 3},
				{Pattern: "logo", Weight: 2},
				{Pattern: "tagline", Weight: 2},
				{Pattern: "slogan", Weight: 2},
				{Pattern: "identity", Weight: 1},
				{Pattern: "audience", Weight: 1},
			},
			Sections: []Section{
				{Name: "audience", Heading: "Target audience", Guidance: "Describe the customer segment, demographics and tone expectations."},
				{Name: "voice", Heading: "Brand voice", Guidance: "Define the personality traits and vocabulary the brand uses."},
			},
			ExtendedSections: []Section{
				{Name: "competitors", Heading: "Competitive landscape", Guidance: "Name competing brands and the positioning to differentiate from."},
			},
			Checklist: []ChecklistItem{
				{Name: "audience", Patterns: []string{"audience", "customer", "segment"}},
				{Name: "voice", Patterns: []string{"voice", "tone", "personality"}},
				{Name: "deliverable", Patterns: []string{"logo", "tagline", "slogan", "guideline", "name"}},
			},
			Vocabulary: []string{
				"positioning", "identity", "tagline", "audience", "tone",
				"differentiation", "messaging", "persona",
			},
		},
		{
			Domain:          domain.DomainCinema,
			Role:            "professional screenwriter",
			DefaultTemplate: domain.TemplateFewShot,
			Keywords: []WeightedPattern{
				{Pattern: "screenplay", Weight: 3},
				{Pattern: "script", Weight: 2},
				{Pattern: "scene", Weight: 2},
				{Pattern: "film", Weight: 2},
				{Pattern: "movie", Weight: 2},
				{Pattern: "dialogue", Weight: 1.5},
				{Pattern: "character", Weight: 1},
			},
			Sections: []Section{
				{Name: "scene_headings", Heading: "Scene headings", Guidance: "Use standard INT./EXT. slug lines with location and time of day."},
				{Name: "character_cues", Heading: "Character cues", Guidance: "Center character names above dialogue and keep cues consistent."},
				{Name: "format", Heading: "Format conventions", Guidance: "Follow standard screenplay format with action lines in present tense."},
			},
			Checklist: []ChecklistItem{
				{Name: "scene", Patterns: []string{"scene", "int", "ext"}},
				{Name: "character", Patterns: []string{"character", "protagonist", "cue"}},
				{Name: "genre", Patterns: []string{"genre", "drama", "comedy", "thriller", "tone"}},
			},
			Vocabulary: []string{
				"slug line", "dialogue", "protagonist", "act", "beat",
				"montage", "voiceover", "genre",
			},
		},
		{
			Domain:          domain.DomainSaaS,
			Role:            "SaaS product manager",
			DefaultTemplate: domain.TemplateBasic,
			Keywords: []WeightedPattern{
				{Pattern: "saas", Weight: 3},
				{Pattern: "subscription", Weight: 2},
				{Pattern: "pricing", Weight: 1.5},
				{Pattern: "onboarding", Weight: 1.5},
				{Pattern: "churn", Weight: 2},
				{Pattern: "tenant", Weight: 2},
			},
			Sections: []Section{
				{Name: "users", Heading: "User segments", Guidance: "Identify the plan tiers and user roles affected."},
				{Name: "metrics", Heading: "Success metrics", Guidance: "State the activation, retention or revenue metrics to move."},
			},
			Checklist: []ChecklistItem{
				{Name: "segment", Patterns: []string{"segment", "tier", "plan", "roles"}},
				{Name: "metric", Patterns: []string{"metric", "retention", "activation", "revenue"}},
				{Name: "objective", Patterns: []string{"launch", "improve", "reduce", "increase"}},
			},
			Vocabulary: []string{
				"subscription", "tenant", "onboarding", "churn", "activation",
				"retention", "pricing tier", "upsell",
			},
		},
		{
			Domain:          domain.DomainDevOps,
			Role:            "site reliability engineer",
			DefaultTemplate: domain.TemplateChainOfThought,
			Keywords: []WeightedPattern{
				{Pattern: "deploy", Weight: 2},
				{Pattern: "deployment", Weight: 2},
				{Pattern: "kubernetes", Weight: 3},
				{Pattern: "docker", Weight: 2},
				{Pattern: "pipeline", Weight: 1.5},
				{Pattern: "ci/cd", Weight: 3},
				{Pattern: "terraform", Weight: 3},
				{Pattern: "monitoring", Weight: 1.5},
			},
			Sections: []Section{
				{Name: "environment", Heading: "Target environment", Guidance: "Name the platform, region and runtime versions involved."},
				{Name: "rollback", Heading: "Rollback plan", Guidance: "Describe the rollback trigger and procedure on failure."},
			},
			ExtendedSections: []Section{
				{Name: "observability", Heading: "Observability", Guidance: "List the metrics, logs and alerts that verify the change."},
			},
			Checklist: []ChecklistItem{
				{Name: "environment", Patterns: []string{"environment", "cluster", "region", "staging", "production"}},
				{Name: "rollback", Patterns: []string{"rollback", "revert", "failure"}},
				{Name: "automation", Patterns: []string{"pipeline", "automated", "workflow"}},
			},
			Vocabulary: []string{
				"cluster", "pipeline", "rollback", "canary", "manifest",
				"provisioning", "alerting", "runbook",
			},
		},
		{
			Domain:          domain.DomainGeneral,
			Role:            "experienced consultant",
			DefaultTemplate: domain.TemplateBasic,
			Keywords:        nil,
			Sections:        nil,
			ExtendedSections: []Section{
				{Name: "context", Heading: "Context", Guidance: "Provide background, prior attempts and the environment involved."},
			},
			Checklist: []ChecklistItem{
				{Name: "objective", Patterns: []string{"create", "build", "write", "design", "implement", "analyze", "explain", "generate"}},
				{Name: "audience", Patterns: []string{"you are", "audience", "act as"}},
				{Name: "requirements", Patterns: []string{"requirements"}},
				{Name: "criteria", Patterns: []string{"success criteria", "acceptance"}},
				{Name: "constraints", Patterns: []string{"constraints", "must not", "limit"}},
			},
			Vocabulary: []string{
				"requirements", "deliverable", "scope", "constraint",
			},
		},
		{
			Domain:          domain.DomainMobile,
			Role:            "mobile application developer",
			DefaultTemplate: domain.TemplateBasic,
			Keywords: []WeightedPattern{
				{Pattern: "mobile", Weight: 2},
				{Pattern: "ios", Weight: 3},
				{Pattern: "android", Weight: 3},
				{Pattern: "app store", Weight: 2},
				{Pattern: "swift", Weight: 2},
				{Pattern: "kotlin", Weight: 2},
				{Pattern: "flutter", Weight: 3},
			},
			Sections: []Section{
				{Name: "platforms", Heading: "Target platforms", Guidance: "State iOS and Android versions and device classes supported."},
				{Name: "offline", Heading: "Offline behavior", Guidance: "Define caching, sync and connectivity-loss handling."},
			},
			Checklist: []ChecklistItem{
				{Name: "platform", Patterns: []string{"ios", "android", "platform"}},
				{Name: "offline", Patterns: []string{"offline", "sync", "cache"}},
				{Name: "objective", Patterns: []string{"screen", "feature", "app", "flow"}},
			},
			Vocabulary: []string{
				"navigation", "push notification", "deep link", "gesture",
				"offline mode", "app store",
			},
		},
		{
			Domain:          domain.DomainWeb,
			Role:            "web developer",
			DefaultTemplate: domain.TemplateBasic,
			Keywords: []WeightedPattern{
				{Pattern: "website", Weight: 2},
				{Pattern: "web", Weight: 1},
				{Pattern: "landing page", Weight: 3},
				{Pattern: "seo", Weight: 2},
				{Pattern: "responsive", Weight: 2},
				{Pattern: "browser", Weight: 1.5},
			},
			Sections: []Section{
				{Name: "browsers", Heading: "Browser support", Guidance: "List the browsers and minimum versions to support."},
				{Name: "accessibility", Heading: "Accessibility", Guidance: "Target WCAG 2.1 AA including keyboard navigation and contrast."},
			},
			Checklist: []ChecklistItem{
				{Name: "browser", Patterns: []string{"browser", "chrome", "firefox", "safari"}},
				{Name: "accessibility", Patterns: []string{"accessibility", "wcag", "aria"}},
				{Name: "responsive", Patterns: []string{"responsive", "mobile", "viewport"}},
			},
			Vocabulary: []string{
				"responsive", "viewport", "accessibility", "semantic markup",
				"lighthouse", "seo",
			},
		},
		{
			Domain:          domain.DomainBackend,
			Role:            "backend engineer",
			DefaultTemplate: domain.TemplateChainOfThought,
			Keywords: []WeightedPattern{
				{Pattern: "api", Weight: 2},
				{Pattern: "endpoint", Weight: 2},
				{Pattern: "backend", Weight: 3},
				{Pattern: "microservice", Weight: 2},
				{Pattern: "rest", Weight: 1.5},
				{Pattern: "grpc", Weight: 2},
				{Pattern: "server", Weight: 1},
			},
			Sections: []Section{
				{Name: "contract", Heading: "API contract", Guidance: "Define request and response shapes, status codes and error bodies."},
				{Name: "data", Heading: "Data model", Guidance: "Describe the entities, ownership and consistency requirements."},
			},
			ExtendedSections: []Section{
				{Name: "scale", Heading: "Scale expectations", Guidance: "State request rates, payload sizes and latency budgets."},
			},
			Checklist: []ChecklistItem{
				{Name: "contract", Patterns: []string{"request", "response", "status code", "contract"}},
				{Name: "data", Patterns: []string{"entity", "model", "consistency"}},
				{Name: "errors", Patterns: []string{"error", "failure", "retry"}},
			},
			Vocabulary: []string{
				"endpoint", "idempotency", "pagination", "authentication",
				"rate limit", "consistency", "payload",
			},
		},
		{
			Domain:          domain.DomainFrontend,
			Role:            "frontend engineer",
			DefaultTemplate: domain.TemplateBasic,
			Keywords: []WeightedPattern{
				{Pattern: "frontend", Weight: 3},
				{Pattern: "react", Weight: 2},
				{Pattern: "vue", Weight: 2},
				{Pattern: "component", Weight: 1.5},
				{Pattern: "css", Weight: 2},
				{Pattern: "ui", Weight: 1},
				{Pattern: "ux", Weight: 1},
			},
			Sections: []Section{
				{Name: "states", Heading: "Component states", Guidance: "Cover loading, empty, error and success states explicitly."},
				{Name: "styling", Heading: "Styling approach", Guidance: "Name the design system, tokens or CSS methodology to follow."},
			},
			Checklist: []ChecklistItem{
				{Name: "states", Patterns: []string{"loading", "error state", "empty state", "states"}},
				{Name: "styling", Patterns: []string{"design system", "styling", "css", "theme"}},
				{Name: "interaction", Patterns: []string{"click", "hover", "input", "interaction"}},
			},
			Vocabulary: []string{
				"component", "state management", "design token", "render",
				"breakpoint", "interaction",
			},
		},
		{
			Domain:          domain.DomainAI,
			Role:            "machine learning engineer",
			DefaultTemplate: domain.TemplateChainOfThought,
			Keywords: []WeightedPattern{
				{Pattern: "llm", Weight: 3},
				{Pattern: "machine learning", Weight: 3},
				{Pattern: "model", Weight: 1},
				{Pattern: "training", Weight: 1.5},
				{Pattern: "embedding", Weight: 2},
				{Pattern: "neural", Weight: 2},
				{Pattern: "ai", Weight: 1.5},
			},
			Sections: []Section{
				{Name: "inputs", Heading: "Input specification", Guidance: "Describe input formats, token limits and preprocessing."},
				{Name: "evaluation", Heading: "Evaluation method", Guidance: "Define the metrics and datasets used to judge output quality."},
			},
			Checklist: []ChecklistItem{
				{Name: "inputs", Patterns: []string{"input", "dataset", "token"}},
				{Name: "evaluation", Patterns: []string{"evaluation", "metric", "benchmark"}},
				{Name: "objective", Patterns: []string{"train", "fine-tune", "classify", "predict", "generate"}},
			},
			Vocabulary: []string{
				"inference", "fine-tuning", "embedding", "prompt", "token",
				"benchmark", "hallucination",
			},
		},
		{
			Domain:          domain.DomainGaming,
			Role:            "game designer",
			DefaultTemplate: domain.TemplateFewShot,
			Keywords: []WeightedPattern{
				{Pattern: "game", Weight: 2},
				{Pattern: "gameplay", Weight: 3},
				{Pattern: "level design", Weight: 3},
				{Pattern: "player", Weight: 1.5},
				{Pattern: "unity", Weight: 2},
				{Pattern: "unreal", Weight: 2},
			},
			Sections: []Section{
				{Name: "mechanics", Heading: "Core mechanics", Guidance: "Define the player verbs, win conditions and feedback loops."},
				{Name: "progression", Heading: "Progression", Guidance: "Describe difficulty curve, rewards and unlock pacing."},
			},
			Checklist: []ChecklistItem{
				{Name: "mechanics", Patterns: []string{"mechanic", "win condition", "loop"}},
				{Name: "progression", Patterns: []string{"progression", "difficulty", "reward"}},
				{Name: "platform", Patterns: []string{"pc", "console", "platform", "engine"}},
			},
			Vocabulary: []string{
				"mechanic", "progression", "balancing", "playtest",
				"game loop", "economy",
			},
		},
		{
			Domain:          domain.DomainCrypto,
			Role:            "blockchain engineer",
			DefaultTemplate: domain.TemplateChainOfThought,
			Keywords: []WeightedPattern{
				{Pattern: "blockchain", Weight: 3},
				{Pattern: "smart contract", Weight: 3},
				{Pattern: "token", Weight: 1},
				{Pattern: "defi", Weight: 3},
				{Pattern: "wallet", Weight: 2},
				{Pattern: "solidity", Weight: 3},
				{Pattern: "ethereum", Weight: 2},
			},
			Sections: []Section{
				{Name: "chain", Heading: "Target chain", Guidance: "Name the network, standard and contract language versions."},
				{Name: "security", Heading: "Security considerations", Guidance: "Address reentrancy, overflow and access control explicitly."},
			},
			Checklist: []ChecklistItem{
				{Name: "chain", Patterns: []string{"ethereum", "chain", "network", "erc"}},
				{Name: "security", Patterns: []string{"security", "audit", "reentrancy", "access control"}},
				{Name: "economics", Patterns: []string{"supply", "mint", "fee", "tokenomics"}},
			},
			Vocabulary: []string{
				"smart contract", "gas", "consensus", "ledger", "custody",
				"tokenomics", "audit",
			},
		},
		{
			Domain:          domain.DomainEducation,
			Role:            "curriculum designer",
			DefaultTemplate: domain.TemplateFewShot,
			Keywords: []WeightedPattern{
				{Pattern: "lesson", Weight: 2},
				{Pattern: "curriculum", Weight: 3},
				{Pattern: "teach", Weight: 2},
				{Pattern: "student", Weight: 1.5},
				{Pattern: "course", Weight: 1.5},
				{Pattern: "quiz", Weight: 2},
			},
			Sections: []Section{
				{Name: "learners", Heading: "Learner profile", Guidance: "State age group, prior knowledge and learning goals."},
				{Name: "outcomes", Heading: "Learning outcomes", Guidance: "List measurable outcomes using action verbs."},
			},
			Checklist: []ChecklistItem{
				{Name: "learners", Patterns: []string{"grade", "age", "beginner", "learner"}},
				{Name: "outcomes", Patterns: []string{"outcome", "objective", "understand", "apply"}},
				{Name: "assessment", Patterns: []string{"assessment", "quiz", "exercise", "rubric"}},
			},
			Vocabulary: []string{
				"scaffolding", "assessment", "outcome", "rubric",
				"prerequisite", "engagement",
			},
		},
		{
			Domain:          domain.DomainHealthcare,
			Role:            "clinical informatics specialist",
			DefaultTemplate: domain.TemplateBasic,
			Keywords: []WeightedPattern{
				{Pattern: "patient", Weight: 2},
				{Pattern: "clinical", Weight: 2},
				{Pattern: "medical", Weight: 2},
				{Pattern: "health", Weight: 1},
				{Pattern: "hipaa", Weight: 3},
				{Pattern: "diagnosis", Weight: 2},
			},
			Sections: []Section{
				{Name: "compliance", Heading: "Compliance scope", Guidance: "Identify HIPAA, consent and data-handling obligations involved."},
				{Name: "safety", Heading: "Patient safety", Guidance: "Flag clinical-decision boundaries and required disclaimers."},
			},
			Checklist: []ChecklistItem{
				{Name: "compliance", Patterns: []string{"hipaa", "compliance", "consent", "privacy"}},
				{Name: "safety", Patterns: []string{"safety", "disclaimer", "clinician"}},
				{Name: "population", Patterns: []string{"patient", "population", "cohort"}},
			},
			Vocabulary: []string{
				"phi", "consent", "clinical workflow", "triage",
				"interoperability", "ehr",
			},
		},
		{
			Domain:          domain.DomainFinance,
			Role:            "financial analyst",
			DefaultTemplate: domain.TemplateChainOfThought,
			Keywords: []WeightedPattern{
				{Pattern: "finance", Weight: 2},
				{Pattern: "financial", Weight: 2},
				{Pattern: "investment", Weight: 2},
				{Pattern: "portfolio", Weight: 2},
				{Pattern: "budget", Weight: 1.5},
				{Pattern: "revenue", Weight: 1},
				{Pattern: "accounting", Weight: 2},
			},
			Sections: []Section{
				{Name: "horizon", Heading: "Time horizon", Guidance: "State the reporting period or investment horizon in question."},
				{Name: "assumptions", Heading: "Assumptions", Guidance: "List rate, growth and currency assumptions with sources."},
			},
			Checklist: []ChecklistItem{
				{Name: "horizon", Patterns: []string{"quarter", "year", "horizon", "period"}},
				{Name: "assumptions", Patterns: []string{"assumption", "rate", "growth"}},
				{Name: "figures", Patterns: []string{"revenue", "cost", "margin", "return"}},
			},
			Vocabulary: []string{
				"valuation", "cash flow", "margin", "forecast", "liquidity",
				"benchmark", "volatility",
			},
		},
		{
			Domain:          domain.DomainLegal,
			Role:            "legal counsel",
			DefaultTemplate: domain.TemplateRoleBased,
			Keywords: []WeightedPattern{
				{Pattern: "legal", Weight: 2},
				{Pattern: "contract", Weight: 2},
				{Pattern: "clause", Weight: 2},
				{Pattern: "compliance", Weight: 1.5},
				{Pattern: "liability", Weight: 2},
				{Pattern: "agreement", Weight: 1.5},
				{Pattern: "gdpr", Weight: 3},
			},
			Sections: []Section{
				{Name: "jurisdiction", Heading: "Jurisdiction", Guidance: "Name the governing law and venue the analysis assumes."},
				{Name: "parties", Heading: "Parties and roles", Guidance: "Identify the parties, obligations and risk allocation."},
			},
			Checklist: []ChecklistItem{
				{Name: "jurisdiction", Patterns: []string{"jurisdiction", "governing law", "state", "country"}},
				{Name: "parties", Patterns: []string{"party", "parties", "obligation"}},
				{Name: "scope", Patterns: []string{"clause", "term", "scope", "liability"}},
			},
			Vocabulary: []string{
				"indemnification", "jurisdiction", "liability", "warranty",
				"severability", "counterparty",
			},
		},
	}
}

// genericAntiPatterns are validator checks applied to every domain, in
// declaration order
func genericAntiPatterns() []AntiPattern {
	return []AntiPattern{
		{
			Category: domain.CategoryPlaceholder,
			Severity: domain.SeverityError,
			Message:  "contains placeholder text",
			Any:      []string{"lorem ipsum", "tbd", "todo", "xxx", "placeholder", "insert here", "fill in"},
		},
		{
			Category: domain.CategoryContradiction,
			Severity: domain.SeverityError,
			Message:  "contradictory modifiers: brief and comprehensive",
			Pair:     [2]string{"brief", "comprehensive"},
		},
		{
			Category: domain.CategoryContradiction,
			Severity: domain.SeverityError,
			Message:  "contradictory modifiers: simple and detailed",
			Pair:     [2]string{"simple", "detailed"},
		},
		{
			Category: domain.CategoryVagueness,
			Severity: domain.SeverityWarning,
			Message:  "vague wording weakens the instruction",
			Any:      []string{"something", "stuff", "somehow", "whatever", "things like"},
		},
		{
			Category: domain.CategoryMissingCriteria,
			Severity: domain.SeverityWarning,
			Message:  "no explicit success criterion",
			Missing:  []string{"success criteria", "acceptance", "must", "should"},
		},
		{
			Category: domain.CategoryAmbiguity,
			Severity: domain.SeverityInfo,
			Message:  "etc. leaves the enumeration open",
			Any:      []string{"etc"},
		},
	}
}

// styleSynonyms map free-form style hints to templates
func styleSynonyms() []styleSynonym {
	return []styleSynonym{
		{
			template: domain.TemplateChainOfThought,
			phrases:  []string{"chain of thought", "show your reasoning", "step by step", "reasoning steps", "think aloud"},
		},
		{
			template: domain.TemplateFewShot,
			phrases:  []string{"few shot", "give examples", "with examples", "by example", "sample pairs"},
		},
		{
			template: domain.TemplateRoleBased,
			phrases:  []string{"role based", "role play", "as a persona", "act as", "persona"},
		},
		{
			template: domain.TemplateBasic,
			phrases:  []string{"plain", "simple format", "single block", "no frills"},
		},
	}
}

func successCriteriaSection() Section {
	return Section{
		Name:     "success_criteria",
		Heading:  "Success criteria",
		Guidance: "The result must satisfy every requirement above and be verifiable without further clarification.",
	}
}

func constraintsSection() Section {
	return Section{
		Name:     "constraints",
		Heading:  "Constraints",
		Guidance: "State limits on length, tools, budget and out-of-scope work.",
	}
}
