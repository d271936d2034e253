package knowledge

import "github.com/pediasafe-screening-server/internal/domain"

// popiCriteria holds the POPI (Pediatrics: Omission of Prescriptions and
// Inappropriate prescriptions) explicit inappropriate-prescription criteria.
func popiCriteria() []domain.Criterion {
	return []domain.Criterion{
		{
			Medication:     "Aspirin",
			AgeRestriction: "< 16 years",
			Condition:      "Any condition except Kawasaki disease",
			Rationale:      "Risk of Reye's syndrome in children under 16 years",
			Reference:      "POPI explicit criteria - Reye's syndrome prevention",
		},
		{
			Medication:     "Codeine",
			AgeRestriction: "< 12 years",
			Condition:      "Pain management or cough suppression",
			Rationale:      "Risk of serious respiratory depression due to variable CYP2D6 metabolism",
			Reference:      "FDA Safety Communication 2013, POPI criteria",
		},
		{
			Medication:     "Tramadol",
			AgeRestriction: "< 12 years",
			Condition:      "Pain management",
			Rationale:      "Risk of serious respiratory depression, especially in ultra-rapid CYP2D6 metabolizers",
			Reference:      "FDA Safety Communication 2017, POPI criteria",
		},
		{
			Medication:     "Diphenhydramine",
			AgeRestriction: "< 2 years",
			Condition:      "Any condition",
			Rationale:      "Risk of anticholinergic toxicity and paradoxical excitation in infants",
			Reference:      "POPI explicit criteria, AAP recommendations",
		},
		{
			Medication:     "Promethazine",
			AgeRestriction: "< 2 years",
			Condition:      "Any condition",
			Rationale:      "Risk of severe respiratory depression and death",
			Reference:      "FDA Black Box Warning, POPI criteria",
		},
		{
			Medication:     "Dextromethorphan",
			AgeRestriction: "< 4 years",
			Condition:      "Cough",
			Rationale:      "Limited efficacy and potential for serious adverse effects including respiratory depression",
			Reference:      "AAP Clinical Report 2008, POPI criteria",
		},
		{
			Medication:     "Pseudoephedrine",
			AgeRestriction: "< 4 years",
			Condition:      "Nasal congestion",
			Rationale:      "Risk of cardiovascular and CNS adverse effects with minimal efficacy",
			Reference:      "POPI criteria, FDA recommendations",
		},
		{
			Medication:     "Phenylephrine",
			AgeRestriction: "< 4 years",
			Condition:      "Nasal congestion",
			Rationale:      "Risk of hypertension and cardiovascular effects in young children",
			Reference:      "POPI explicit criteria",
		},
		{
			Medication:     "Loperamide",
			AgeRestriction: "< 2 years",
			Condition:      "Diarrhea",
			Rationale:      "Risk of paralytic ileus and CNS depression in young children",
			Reference:      "POPI criteria, WHO recommendations",
		},
		{
			Medication:     "Metoclopramide",
			AgeRestriction: "< 1 year",
			Condition:      "Any condition",
			Rationale:      "Risk of extrapyramidal symptoms and tardive dyskinesia",
			Reference:      "POPI explicit criteria, EMA recommendations",
		},
	}
}
