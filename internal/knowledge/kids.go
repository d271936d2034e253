package knowledge

import "github.com/pediasafe-screening-server/internal/domain"

// kidsCriteria holds the KIDs List (Key potentially Inappropriate Drugs)
// criteria for high-risk pediatric drug flags.
func kidsCriteria() []domain.Criterion {
	return []domain.Criterion{
		{
			Medication:     "Chlorpheniramine",
			AgeRestriction: "< 2 years",
			Condition:      "Allergic conditions",
			Rationale:      "Risk of CNS depression and anticholinergic effects in young children",
			Reference:      "KIDs List criteria, FDA recommendations",
		},
		{
			Medication:     "Hyoscine",
			AgeRestriction: "< 6 months",
			Condition:      "Any condition",
			Rationale:      "Risk of anticholinergic toxicity in young infants",
			Reference:      "KIDs List criteria",
		},
		{
			Medication:     "Atropine",
			AgeRestriction: "< 6 months",
			Condition:      "Non-emergency use",
			Rationale:      "Risk of anticholinergic toxicity and hyperthermia in infants",
			Reference:      "KIDs List criteria",
		},
		{
			// The cardiac qualifier is carried in the restriction text but is
			// not evaluated; only the numeric threshold is checked.
			Medication:     "Domperidone",
			AgeRestriction: "< 12 years with cardiac conditions",
			Condition:      "Cardiac arrhythmias present",
			Rationale:      "Risk of QT prolongation and sudden cardiac death",
			Reference:      "KIDs List criteria, EMA warnings",
		},
		{
			Medication:     "Erythromycin",
			AgeRestriction: "< 2 weeks",
			Condition:      "Any condition",
			Rationale:      "Risk of pyloric stenosis in young infants",
			Reference:      "KIDs List criteria, FDA warnings",
		},
		{
			Medication:     "Ciprofloxacin",
			AgeRestriction: "< 18 years",
			Condition:      "Non-severe infections",
			Rationale:      "Risk of arthropathy and tendon damage in growing children",
			Reference:      "KIDs List criteria, FDA Black Box Warning",
		},
		{
			Medication:     "Levofloxacin",
			AgeRestriction: "< 18 years",
			Condition:      "Non-severe infections",
			Rationale:      "Risk of arthropathy and tendon damage in pediatric patients",
			Reference:      "KIDs List criteria, FDA warnings",
		},
		{
			Medication:     "Tetracycline",
			AgeRestriction: "< 8 years",
			Condition:      "Any condition",
			Rationale:      "Risk of permanent tooth discoloration and enamel hypoplasia",
			Reference:      "KIDs List criteria, standard pediatric references",
		},
		{
			Medication:     "Doxycycline",
			AgeRestriction: "< 8 years",
			Condition:      "Any condition except life-threatening infections",
			Rationale:      "Risk of permanent tooth discoloration and impaired bone growth",
			Reference:      "KIDs List criteria, AAP recommendations",
		},
		{
			// "All ages" matches no numeric threshold, so this entry never
			// produces an age-based flag on its own.
			Medication:     "Amiodarone",
			AgeRestriction: "All ages",
			Condition:      "First-line antiarrhythmic use",
			Rationale:      "Multiple serious adverse effects including thyroid, pulmonary, and hepatic toxicity",
			Reference:      "KIDs List criteria, pediatric cardiology guidelines",
		},
	}
}
