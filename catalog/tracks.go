package catalog

// tracks is the closed set of built-in training tracks.
var tracks = map[string]Track{
	"recruiter": {
		ID:    "recruiter",
		Title: "Recruiter Compliance Training",
		Sections: []Section{
			{
				Number:  1,
				Title:   "Pay Transparency Fundamentals",
				Content: "Why pay transparency laws exist, which jurisdictions enforce them, and what a compliant job posting looks like.",
				Quiz: []Question{
					{
						ID:            "rec-1-1",
						Prompt:        "A job posting for a role that can be performed remotely must include a salary range when:",
						Options:       []string{"The company has over 500 employees", "Any applicant could be located in a jurisdiction with a pay transparency law", "The role is senior level", "The recruiter decides it is relevant"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-1-2",
						Prompt:        "A compliant salary range must be:",
						Options:       []string{"The minimum wage for the state", "Whatever was paid to the last hire", "A good-faith estimate of what the employer expects to pay", "Omitted if benefits are listed"},
						CorrectAnswer: 2,
					},
					{
						ID:            "rec-1-3",
						Prompt:        "If a candidate asks for the pay range of a role during an interview, you should:",
						Options:       []string{"Provide it", "Defer until an offer is made", "Ask for their salary history first", "Decline to discuss compensation"},
						CorrectAnswer: 0,
					},
					{
						ID:            "rec-1-4",
						Prompt:        "Asking a candidate for their salary history is:",
						Options:       []string{"Standard practice everywhere", "Prohibited in many jurisdictions", "Required for banded roles", "Allowed if the candidate volunteers a resume"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-1-5",
						Prompt:        "Posting ranges like \"$1 - $1,000,000\" to technically satisfy a transparency law is:",
						Options:       []string{"Not a good-faith range and likely a violation", "Fine if the midpoint is realistic", "Recommended for flexibility", "Required for executive roles"},
						CorrectAnswer: 0,
					},
				},
			},
			{
				Number:  2,
				Title:   "Non-Discrimination in Sourcing & Screening",
				Content: "Protected characteristics, neutral screening criteria, and how discrimination risk shows up in sourcing filters and interview notes.",
				Quiz: []Question{
					{
						ID:            "rec-2-1",
						Prompt:        "Which of these is a lawful screening criterion?",
						Options:       []string{"Graduation year", "Age range", "Years of relevant experience", "Whether the candidate has children"},
						CorrectAnswer: 2,
					},
					{
						ID:            "rec-2-2",
						Prompt:        "Interview notes should record:",
						Options:       []string{"Impressions of the candidate's accent", "Job-related observations tied to the role's requirements", "Guesses about age or family plans", "Anything, since notes are internal"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-2-3",
						Prompt:        "A sourcing filter that excludes candidates with employment gaps over 6 months:",
						Options:       []string{"Is always illegal", "Is safe because it is neutral on its face", "May create disparate impact and should be justified by business necessity", "Only matters for government contractors"},
						CorrectAnswer: 2,
					},
					{
						ID:            "rec-2-4",
						Prompt:        "If a hiring manager asks you to find \"younger, high-energy\" candidates, you should:",
						Options:       []string{"Comply, they own the role", "Flag the request as discriminatory and escalate", "Quietly ignore it", "Translate it into a graduation-year filter"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-2-5",
						Prompt:        "Criminal history may be considered:",
						Options:       []string{"At any point in the process", "Never", "Only as permitted by applicable fair-chance laws, typically after a conditional offer", "Only for felonies"},
						CorrectAnswer: 2,
					},
				},
			},
			{
				Number:  3,
				Title:   "Candidate Data & Record Keeping",
				Content: "Retention periods for applications and interview records, candidate data privacy, and responding to data deletion requests.",
				Quiz: []Question{
					{
						ID:            "rec-3-1",
						Prompt:        "Application records for unselected candidates should generally be retained:",
						Options:       []string{"No longer than 30 days", "For at least the period required by applicable law, commonly one year or more", "Forever", "Only if the candidate consents"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-3-2",
						Prompt:        "A candidate emails asking what personal data you hold on them. You should:",
						Options:       []string{"Ignore it unless they sue", "Forward it to the privacy/legal workflow within the mandated response window", "Delete their file immediately", "Reply with the full ATS export"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-3-3",
						Prompt:        "Sharing a candidate's profile with another company in your network requires:",
						Options:       []string{"Nothing, profiles are public", "The candidate's consent or another lawful basis", "A signed offer letter", "Manager approval only"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-3-4",
						Prompt:        "Interview feedback stored in the ATS is:",
						Options:       []string{"Private to the interviewer", "Potentially discoverable and subject to access requests", "Automatically deleted after a hire", "Exempt from privacy law"},
						CorrectAnswer: 1,
					},
					{
						ID:            "rec-3-5",
						Prompt:        "The safest place to keep notes about a candidate is:",
						Options:       []string{"A personal notebook", "Text messages", "The system of record, written as if the candidate will read them", "A private spreadsheet"},
						CorrectAnswer: 2,
					},
				},
			},
		},
	},
	"hiring-manager": {
		ID:    "hiring-manager",
		Title: "Hiring Manager Essentials",
		Sections: []Section{
			{
				Number:  1,
				Title:   "Lawful Interviewing",
				Content: "Questions you can and cannot ask, structured interviewing, and documenting decisions defensibly.",
				Quiz: []Question{
					{
						ID:            "hm-1-1",
						Prompt:        "Which interview question is lawful?",
						Options:       []string{"Are you planning to have children?", "What year did you graduate?", "Can you perform the essential functions of this role with or without accommodation?", "What church do you attend?"},
						CorrectAnswer: 2,
					},
					{
						ID:            "hm-1-2",
						Prompt:        "Rejection reasons recorded in the ATS should be:",
						Options:       []string{"Left blank to reduce risk", "Specific, job-related and consistent with the interview notes", "A single word", "Written only for internal candidates"},
						CorrectAnswer: 1,
					},
					{
						ID:            "hm-1-3",
						Prompt:        "Using the same question set for every candidate in a loop:",
						Options:       []string{"Reduces bias and strengthens the defensibility of the decision", "Is only needed for executive hires", "Is optional if interviewers are experienced", "Slows hiring with no benefit"},
						CorrectAnswer: 0,
					},
					{
						ID:            "hm-1-4",
						Prompt:        "A candidate discloses a disability during an interview. You should:",
						Options:       []string{"Ask for medical details", "Steer the conversation back to job-related topics and route accommodation questions to HR", "End the interview", "Note it as a hiring risk"},
						CorrectAnswer: 1,
					},
					{
						ID:            "hm-1-5",
						Prompt:        "Discussing a candidate's likely salary expectations based on their current employer is:",
						Options:       []string{"Good market calibration", "A salary-history inference that transparency laws are designed to prevent", "Required for budgeting", "Harmless small talk"},
						CorrectAnswer: 1,
					},
				},
			},
			{
				Number:  2,
				Title:   "Offers & Onboarding Compliance",
				Content: "Offer letter requirements, background check timing, and the paperwork that must be completed before a start date.",
				Quiz: []Question{
					{
						ID:            "hm-2-1",
						Prompt:        "A background check may be initiated:",
						Options:       []string{"As soon as a resume arrives", "After proper disclosure and authorization, at the stage local law permits", "Only for finance roles", "Whenever the recruiter has time"},
						CorrectAnswer: 1,
					},
					{
						ID:            "hm-2-2",
						Prompt:        "Before taking adverse action based on a background report you must:",
						Options:       []string{"Nothing, the report speaks for itself", "Provide the candidate a copy of the report and a chance to respond", "Call their references", "Wait 90 days"},
						CorrectAnswer: 1,
					},
					{
						ID:            "hm-2-3",
						Prompt:        "Work authorization verification must be completed:",
						Options:       []string{"Within the legally mandated window around the start date", "Before the first interview", "Only for remote employees", "Annually"},
						CorrectAnswer: 0,
					},
					{
						ID:            "hm-2-4",
						Prompt:        "An offer letter's compensation must:",
						Options:       []string{"Match or fall within the posted range absent a documented reason", "Always be the range minimum", "Be negotiated without reference to the posting", "Exclude bonus targets"},
						CorrectAnswer: 0,
					},
				},
			},
		},
	},
}
