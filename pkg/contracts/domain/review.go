package domain

// PreAbstractReviewSummary aggregates all reviewer rows for one submission ID
// during the pre-abstract review round. Field names follow the canonical
// column vocabulary so exports line up with the source spreadsheets.
type PreAbstractReviewSummary struct {
	ID                       string   `json:"ID"`
	Title                    string   `json:"Title"`
	BirddogVolunteer         string   `json:"Birddog_Volunteer"`
	AssignedSubcommittee     string   `json:"Assigned_Subcommittee"`
	MeanSubstanceRating      float64  `json:"Mean_Substance_Rating"`
	MeanOriginalityRating    float64  `json:"Mean_Originality_Rating"`
	MeanSalesPitch           float64  `json:"Mean_Sales_Pitch"`
	NumAccept               int      `json:"Num_Accept"`
	NumReject               int      `json:"Num_Reject"`
	NumDiscuss              int      `json:"Num_Discuss"`
	CommentsForBirddog      []string `json:"Comments_for_Birddog"`
	CommentsForSubcommittee []string `json:"Comments_for_Subcommittee"`
}
