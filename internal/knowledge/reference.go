package knowledge

// commonMedications lists the pediatric medications drawn from the POPI,
// PIPc and KIDs sources. Consumed by the reference API endpoints only; the
// matching logic never consults this list.
func commonMedications() []string {
	return []string{
		// Analgesics and Antipyretics
		"Paracetamol/Acetaminophen", "Ibuprofen", "Aspirin", "Codeine", "Tramadol", "Morphine",
		"Diclofenac", "Naproxen", "Celecoxib", "Indomethacin",

		// Antibiotics
		"Amoxicillin", "Amoxicillin/Clavulanate", "Azithromycin", "Clarithromycin", "Erythromycin",
		"Cephalexin", "Cefuroxime", "Ceftriaxone", "Ciprofloxacin", "Levofloxacin", "Clindamycin",
		"Vancomycin", "Gentamicin", "Tobramycin", "Cotrimoxazole/TMP-SMX",

		// Respiratory Medications
		"Salbutamol", "Terbutaline", "Fluticasone", "Budesonide", "Beclomethasone", "Montelukast",
		"Theophylline", "Prednisolone", "Dexamethasone", "Ipratropium", "Tiotropium",

		// Antihistamines and Allergy
		"Cetirizine", "Loratadine", "Fexofenadine", "Diphenhydramine", "Chlorpheniramine",
		"Promethazine", "Hydroxyzine", "Desloratadine", "Levocetirizine",

		// Cough and Cold
		"Dextromethorphan", "Guaifenesin", "Pseudoephedrine", "Phenylephrine",

		// Gastrointestinal
		"Omeprazole", "Lansoprazole", "Ranitidine", "Famotidine", "Domperidone", "Metoclopramide",
		"Ondansetron", "Loperamide", "Lactulose", "Polyethylene glycol", "Simethicone",

		// Neurological and Psychiatric
		"Methylphenidate", "Amphetamine", "Atomoxetine", "Risperidone", "Aripiprazole",
		"Phenytoin", "Carbamazepine", "Valproic acid", "Levetiracetam", "Lamotrigine",
		"Clonazepam", "Diazepam", "Lorazepam",

		// Cardiovascular
		"Digoxin", "Furosemide", "Spironolactone", "Captopril", "Enalapril", "Amlodipine",
		"Propranolol", "Atenolol", "Metoprolol",

		// Endocrine
		"Insulin", "Metformin", "Levothyroxine", "Prednisolone", "Hydrocortisone",

		// Dermatological
		"Hydrocortisone cream", "Betamethasone", "Calamine lotion", "Mupirocin",
		"Clotrimazole", "Nystatin", "Acyclovir",

		// Ophthalmological
		"Chloramphenicol eye drops", "Tobramycin eye drops", "Prednisolone eye drops",

		// Miscellaneous
		"Iron supplements", "Folic acid", "Vitamin D", "Multivitamins", "Zinc supplements",
		"ORS (Oral Rehydration Solution)", "Hyoscine", "Atropine", "Glycerin suppository",
	}
}

// commonConditions lists the pediatric conditions drawn from the POPI, PIPc
// and KIDs sources.
func commonConditions() []string {
	return []string{
		// Respiratory Conditions
		"Upper respiratory tract infection", "Asthma", "Bronchiolitis", "Pneumonia",
		"Croup", "Chronic cough", "Allergic rhinitis", "Sinusitis",

		// Infectious Diseases
		"Acute otitis media", "Pharyngitis/Tonsillitis", "Urinary tract infection",
		"Gastroenteritis", "Skin and soft tissue infection", "Meningitis", "Sepsis",
		"Conjunctivitis", "Impetigo", "Cellulitis",

		// Gastrointestinal Disorders
		"GERD (Gastroesophageal reflux disease)", "Constipation", "Diarrhea",
		"Inflammatory bowel disease", "Peptic ulcer disease", "Nausea and vomiting",
		"Abdominal pain", "Food poisoning",

		// Neurological and Psychiatric
		"ADHD (Attention Deficit Hyperactivity Disorder)", "Seizure disorder", "Epilepsy",
		"Febrile seizures", "Migraine", "Headache", "Autism spectrum disorder",
		"Anxiety disorder", "Depression", "Sleep disorders",

		// Allergic and Immunological
		"Eczema/Atopic dermatitis", "Food allergies", "Drug allergies", "Anaphylaxis",
		"Allergic conjunctivitis", "Contact dermatitis",

		// Endocrine and Metabolic
		"Type 1 Diabetes", "Type 2 Diabetes", "Hypothyroidism", "Hyperthyroidism",
		"Growth hormone deficiency", "Obesity", "Failure to thrive",

		// Cardiovascular
		"Congenital heart disease", "Hypertension", "Arrhythmias", "Heart failure",
		"Kawasaki disease", "Rheumatic fever",

		// Hematological and Oncological
		"Iron deficiency anemia", "Sickle cell disease", "Thalassemia", "Leukemia",
		"Lymphoma", "Bleeding disorders",

		// Musculoskeletal
		"Juvenile idiopathic arthritis", "Fractures", "Sprains and strains",
		"Muscular dystrophy", "Osteomyelitis",

		// Genitourinary
		"Nephrotic syndrome", "Chronic kidney disease", "Vesicoureteral reflux",
		"Enuresis (bedwetting)", "Urinary incontinence",

		// Dermatological
		"Diaper dermatitis", "Seborrheic dermatitis", "Psoriasis", "Acne",
		"Fungal infections", "Viral exanthems", "Scabies",

		// Others
		"Fever of unknown origin", "Pain management", "Palliative care",
		"Immunization reactions", "Poisoning/Overdose", "Burns",
	}
}
