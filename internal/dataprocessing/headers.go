package dataprocessing

import "strings"

// DefaultColumnMappings returns the dictionary of raw spreadsheet headers to
// canonical field names. Several years of differently exported source
// spreadsheets feed this tool, so many raw spellings (trailing spaces,
// underscore vs space, question rewordings) collapse onto one canonical name.
//
// The table is built fresh per call and passed explicitly into MapHeaders so
// concurrent report runs never share mutable state.
func DefaultColumnMappings() map[string]string {
	return map[string]string{
		"_Does_the_primary_or_secondary_author_(first_second_or_both)_reside_outside_the_US?_":  "International(Y/N)",
		"Does_the_primary_or_secondary_author_(first_second_or_both)_reside_outside_the_USA?":   "International(Y/N)",
		"Primary_Contact_-_Country": "Origin_Country",
		"Education":                 "ED",
		"Training":                  "TR",
		"Simulation":                "SIM",
		"Initial Acceptance at Abstract Stage":           "Abstract_Accepted",
		"Initial Rejection at Abstract Stage":            "Abstract_Rejected",
		"Human Performance Analysis and Engineering":     "HPAE",
		"Emerging Concepts and Innovative Technologies":  "ECIT",
		"Policy, Standards, Management, and Acquisition": "PSMA",
		"Rejection of Tutorial Proposal":                 "Proposal_Rejected",
		"Provisional Acceptance of Tutorial Proposal":    "Proposal_Accepted",
		"Final Acceptance at Paper Review ":              "Paper_Accepted",
		"Final_Acceptance_at_Paper_Review":               "Paper_Accepted",
		"Final_Acceptance_at_Paper_Review_":              "Paper_Accepted",
		"Final Rejection at Paper Review ":               "Paper_Rejected",
		"Final Rejection at Paper Review":                "Paper_Rejected",
		"Final_Rejection_at_Paper_Review_":               "Paper_Rejected",
		"Final_Rejection_at_Paper_Review":                "Paper_Rejected",
		"2023_Best_Paper_Nominee":                        "Paper_Accepted",
		"2023 Best Paper Nominee":                        "Paper_Accepted",
		"Final Rejection of Tutorial":                    "TUT_Rejected",
		"Final_Acceptance_of_Tutorial":                   "TUT_Accepted",
		"Final Acceptance of Tutorial":                   "TUT_Accepted",
		"Final Accept":                                   "PDW_Accepted",
		"Final_Accept":                                   "PDW_Accepted",
		"Final Reject":                                   "PDW_Rejected",
		"Final_Reject":                                   "PDW_Rejected",
		"Would_you_want_to_Birddog_this_Abstract_to_Paper?": "Birddog_Volunteer",
		"Would_you_want_to_Birddog_this_submission?":        "Birddog_Volunteer",
		"Are_you_interested_in_being_the_Birddog?":          "Birddog_Volunteer",
		"Comments_for_Birddog_(for_author_feedback)":        "Comments_for_Birddog",
		"Comments_for_the_Subcommittee_(reviewers)":         "Comments_for_Subcommittee",
		"Please_provide_your_2023_tutorial_number_for_reference_(if_presented_in_2023)._If_you_presented_this_topic_at_other_conference_please_list_conference_date_location_and_if_published.": "Past_Year_Tutorial_Number",
		"Alignment:_How_well_does_the_tutorial_align_with_the_purposes_of_the_tutorial_program?":                                "Mean_Alignment",
		"Alignment:__How_well_does_the_tutorial_align_with_the_purposes_of_the_tutorial_program?":                               "Mean_Alignment",
		"Learning_Objectives:_How_clearly_does_the_author_describe_what_participants_will_learn_in_the_tutorial?":               "Mean_Learning_Objectives",
		"Learning_Objectives:__How_clearly_does_the_author_describe_what_participants_will_learn_in_the_tutorial?":              "Mean_Learning_Objectives",
		"Outline_&_Content_Description:_Is_the_tutorial_content_appropriate_and_is_it_clearly_described?":                       "Mean_Outline_Content",
		"Outline_&_Content_Description:__Is_the_tutorial_content_appropriate_and_is_it_clearly_described?":                      "Mean_Outline_Content",
		"Does_this_tutorial_proposal_appear_to_include_a_sales_pitch?":                                                          "Num_Sales_Pitch",
		"Content_Description:_How_clear_is_the_tutorial_content_in_the_slides_and_any_author-provided_notes?":                   "Content_Description",
		"Is_the_amount_of_content_appropriate_for_90_minutes?":                                                                  "Content_Quantity_Appropriate",
		"Are_the_slides_visually_clear_(readability_organization)?":                                                             "Slide_Quality",
		"Comments":                     "Comments",
		"Comments/Remarks":             "Comments",
		"Reviewer_Comments":            "Comments",
		"Desired_Room_Setup":           "Room_Type",
		"AbTitle":                      "Title",
		"Originality":                  "Originality_Rating",
		"Style_/_Writing_Quality":      "Quality_Rating",
		"Birddog":                      "Birddog",
		"Is_this_paper_a_Best_Paper_Candidate?": "Best_Paper_Vote",
		"Comments_for_the_Subcommittee":         "Comments_for_Subcommittee",
		"Comments_for_Birddog":                  "Comments_for_Birddog",
		"Comments_for_discussion":               "Comments_for_Discussion",
		"Sales_Pitch?":                          "Sales_Pitch",
		"Best_Tutorial_nomination?":             "Best_Tutorial",
		"Subcommittee_Category":                 "Subcommittee",
		"Final Acceptance at Paper Stage":       "Paper_Accepted",
		"Final Rejection at Paper Stage":        "Paper_Rejected",
		"IITSEC Paper Approved":                 "Paper_Accepted",
		"Best Paper Winner":                     "Paper_Accepted",
		"I/ITSEC 2021 BP Paper Approved":        "Paper_Accepted",
		"Review_Status":                         "Accept_Reject",
		"Paper Review Status":                   "Paper_Accept_Reject",
		"Paper_Review_Status":                   "Paper_Accept_Reject",
		"How_would_you_label_your_submission?":  "Org_Type",
		"Initial Acceptance of Professional Development Workshop": "Proposal_Accepted",
		"Initial Rejection of Professional Development Workshop":  "Proposal_Rejected",
		"Initial Rejection of Professional Dev Workshop":          "Proposal_Rejected",
		"Main_Subcommittee_Category":                              "Assigned_Subcommittee",
	}
}

// MapHeaders rewrites raw spreadsheet headers into the canonical vocabulary.
// For each header the space-to-underscore normalization is tried first, then
// the raw spelling; headers matching neither pass through unchanged. Output
// order and length always equal the input's.
func MapHeaders(headers []string, mappings map[string]string) []string {
	mapped := make([]string, len(headers))
	for i, header := range headers {
		normalized := strings.ReplaceAll(header, " ", "_")
		switch {
		case mappings[normalized] != "":
			mapped[i] = mappings[normalized]
		case mappings[header] != "":
			mapped[i] = mappings[header]
		default:
			mapped[i] = header
		}
	}
	return mapped
}
