// internal/catalog/data.go
package catalog

// defaultDocuments holds the discharge-instruction texts presented to each
// persona as reading material.
var defaultDocuments = map[string]string{
	"DS1": "You were admitted and found to have an ulcer in the duodenum. To help this heal, we are prescribing new medications (pantoprazole). Please be sure to take this until you are seen in follow-up.",

	"DS2": `Call Dr. xxx if experience:
-Take stool softeners with narcotics
-Fever > 101 or chills
-Increased shortness of breath or cough
-Chest pain
-You may shower. No swimming for 4 weeks
-No driving while taking narcotics.`,

	"DS3": `Keep splint/dressing on until follow-up
Keep splint clean & dry at all times
Follow up with Dr. xxx in xxx days
Wean off of narcotics
Take aspirin for 2 weeks
Physical Therapy:
NWB left lower extremity
Leave splint on until follow-up`,

	"DS4": "Ok to shower today but wear tegaderm dressing over the drain site. No heavy lifting. Return to ED for anything that concerns you.",
}

// defaultQuestions holds the multiple-choice comprehension questions. Answer
// choices are encoded inline with letter labels, as the model sees them.
var defaultQuestions = map[string]string{
	"Q1": "Please rate your understanding level of this discharge instruction.\nA. Very clear\nB. Somewhat clear\nC. Not clear at all",

	"Q2": "Do you know the name of all your medications? (If yes, please type.)\nA. Yes\nB. I don't know\nC. Not provided",

	"Q3": "Do you know your diagnosis? (If yes, please type.)\nA. Yes\nB. I don't know\nC. Not provided",

	"Q4": "Do you know the common side effects of all your medications? (If yes, please type.)\nA. Yes\nB. I don't know\nC. Not provided",

	"Q5": "Are there other prescriptions given besides the medication? (If yes, please type.)\nA. Yes\nB. I don't know\nC. Not provided",

	"Q6": "Do you know what kind of condition you have mentioned in the discharge instructions?\nA. Stomach disease\nB. Ulcer in the duodenum\nC. Wearing Tegaderm\nD. Keep splint\nE. I don't know",

	"Q7": "Do you know what kind of treatment you need to follow based on the discharge instructions?\nA. Nothing\nB. Take a new medication\nC. See a doctor again\nD. I don't know",

	"Q8": "Are there any activities or foods you need to avoid?\nA. Avoid fruit\nB. Avoid strenuous exercise\nC. Others\nD. I don't know",

	"Q9": "Is there anything about your discharge instructions that is unclear or worrying you?\nA. Medication schedule\nB. Follow-up appointments\nC. Symptoms to watch for\nD. Dietary restrictions\nE. Activity limitations\nF. Other, please specify\nG. No, it's very clear",

	"Q10": "Please rate the difficulty in understanding this discharge instruction.\nA. Extremely easy\nB. Somewhat easy\nC. Neither easy nor difficult\nD. Somewhat difficult\nE. Extremely difficult",
}
