package knowledge

import "github.com/pediasafe-screening-server/internal/domain"

// pipcCriteria holds the PIPc prescription-omission criteria: conditions that
// require a standard-of-care medication to be prescribed.
func pipcCriteria() []domain.OmissionCriterion {
	return []domain.OmissionCriterion{
		{
			Condition:         "Asthma",
			MissingMedication: "Short-acting beta-2 agonist (Salbutamol)",
			Rationale:         "Essential rescue medication for acute bronchospasm in all asthma patients",
			Reference:         "GINA Guidelines 2023, PIPc criteria",
		},
		{
			Condition:         "ADHD",
			MissingMedication: "Methylphenidate or Amphetamine",
			Rationale:         "First-line pharmacological treatment for ADHD in children over 6 years",
			Reference:         "AAP Clinical Practice Guidelines, PIPc criteria",
		},
		{
			Condition:         "Seizure disorder",
			MissingMedication: "Anti-epileptic drug",
			Rationale:         "Essential for seizure prevention and control to prevent status epilepticus",
			Reference:         "ILAE Guidelines, PIPc criteria",
		},
		{
			Condition:         "Epilepsy",
			MissingMedication: "Anti-epileptic drug",
			Rationale:         "Mandatory for seizure control and prevention of neurological damage",
			Reference:         "ILAE Guidelines, PIPc criteria",
		},
		{
			Condition:         "Type 1 Diabetes",
			MissingMedication: "Insulin",
			Rationale:         "Life-essential hormone replacement therapy for survival",
			Reference:         "ADA Pediatric Guidelines, PIPc criteria",
		},
		{
			Condition:         "Bacterial pneumonia",
			MissingMedication: "Appropriate antibiotic",
			Rationale:         "Essential for treating bacterial infection and preventing complications",
			Reference:         "WHO pneumonia guidelines, PIPc criteria",
		},
		{
			Condition:         "Urinary tract infection",
			MissingMedication: "Appropriate antibiotic",
			Rationale:         "Necessary to prevent progression to pyelonephritis and sepsis",
			Reference:         "AAP UTI guidelines, PIPc criteria",
		},
		{
			Condition:         "Iron deficiency anemia",
			MissingMedication: "Iron supplements",
			Rationale:         "Essential for correction of iron deficiency and anemia",
			Reference:         "AAP anemia guidelines, PIPc criteria",
		},
		{
			Condition:         "Congenital hypothyroidism",
			MissingMedication: "Levothyroxine",
			Rationale:         "Critical for normal growth and neurodevelopment",
			Reference:         "AAP thyroid guidelines, PIPc criteria",
		},
		{
			Condition:         "Severe allergic reaction",
			MissingMedication: "Epinephrine",
			Rationale:         "Life-saving treatment for anaphylaxis",
			Reference:         "Anaphylaxis guidelines, PIPc criteria",
		},
	}
}
