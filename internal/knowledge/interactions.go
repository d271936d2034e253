package knowledge

import "github.com/pediasafe-screening-server/internal/domain"

// criticalInteractionReference is the citation attached to every curated
// interaction rule.
const criticalInteractionReference = "Clinical pharmacology database and FDA drug labels"

// criticalInteractions holds the curated drug-drug interaction rules, keyed
// by the sorted pair of canonical drug names.
func criticalInteractions() map[domain.PairKey]domain.InteractionRule {
	return map[domain.PairKey]domain.InteractionRule{
		domain.NewPairKey("warfarin", "aspirin"): {
			Severity:             domain.SeverityMajor,
			Mechanism:            "Increased bleeding risk due to additive antiplatelet and anticoagulant effects",
			Management:           "Avoid concurrent use or monitor closely with frequent INR checks and bleeding assessment",
			ClinicalSignificance: "High risk of major bleeding events",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("digoxin", "amiodarone"): {
			Severity:             domain.SeverityMajor,
			Mechanism:            "Amiodarone inhibits P-glycoprotein, increasing digoxin serum levels up to 2-fold",
			Management:           "Reduce digoxin dose by 50% and monitor serum digoxin levels closely",
			ClinicalSignificance: "Risk of digoxin toxicity with cardiac arrhythmias",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("phenytoin", "carbamazepine"): {
			Severity:             domain.SeverityMajor,
			Mechanism:            "Mutual induction of hepatic enzymes leading to decreased efficacy of both drugs",
			Management:           "Monitor seizure control and consider dose adjustments or alternative therapy",
			ClinicalSignificance: "Loss of seizure control in epileptic patients",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("methotrexate", "trimethoprim"): {
			Severity:             domain.SeverityMajor,
			Mechanism:            "Both drugs inhibit folate metabolism, leading to additive bone marrow suppression",
			Management:           "Avoid combination or increase folate supplementation with close monitoring",
			ClinicalSignificance: "Severe pancytopenia and immunosuppression",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("theophylline", "ciprofloxacin"): {
			Severity:             domain.SeverityMajor,
			Mechanism:            "Ciprofloxacin inhibits CYP1A2, reducing theophylline clearance by up to 30%",
			Management:           "Reduce theophylline dose by 50% and monitor serum levels",
			ClinicalSignificance: "Risk of theophylline toxicity with seizures and cardiac arrhythmias",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("insulin", "corticosteroids"): {
			Severity:             domain.SeverityModerate,
			Mechanism:            "Corticosteroids increase blood glucose through gluconeogenesis and insulin resistance",
			Management:           "Monitor blood glucose closely and adjust insulin dosing as needed",
			ClinicalSignificance: "Loss of glycemic control in diabetic patients",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("acetaminophen", "warfarin"): {
			Severity:             domain.SeverityModerate,
			Mechanism:            "High-dose acetaminophen may enhance anticoagulant effect of warfarin",
			Management:           "Limit acetaminophen to <2g/day and monitor INR more frequently",
			ClinicalSignificance: "Increased bleeding risk with chronic high-dose use",
			Reference:            criticalInteractionReference,
		},
		domain.NewPairKey("omeprazole", "clopidogrel"): {
			Severity:             domain.SeverityModerate,
			Mechanism:            "Omeprazole inhibits CYP2C19, reducing conversion of clopidogrel to active metabolite",
			Management:           "Consider alternative PPI (pantoprazole) or H2 blocker",
			ClinicalSignificance: "Reduced antiplatelet effect increasing cardiovascular risk",
			Reference:            criticalInteractionReference,
		},
	}
}
