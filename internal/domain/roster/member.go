// Package roster turns raw crew-sheet rows into typed crew records.
package roster

// CrewMember is one normalized roster row. Records are value snapshots:
// every refresh recomputes the full set and nothing is mutated in place.
//
// Two rows with the same name produce two records. The sheet is the
// source of truth and duplicate rows are a sheet problem to surface,
// not one to silently collapse here.
type CrewMember struct {
	Name            string `json:"name"`
	Rank            string `json:"rank"`
	RankTier        string `json:"rank_tier"`
	Squad           string `json:"squad"`
	Timezone        string `json:"timezone,omitempty"`
	DiscordUsername string `json:"discord_username,omitempty"`

	SailingCompliant bool `json:"sailing_compliant"`
	HostingCompliant bool `json:"hosting_compliant"`

	LOAStatus        bool   `json:"loa_status"`
	ComplianceStatus string `json:"compliance_status,omitempty"`
	LOAReturnDate    string `json:"loa_return_date,omitempty"`

	// Last activity dates in ISO form, empty when the cell was absent
	// or unparseable. DaysInactive is the sheet's own fallback counter.
	LastVoyageDate string `json:"last_voyage_date,omitempty"`
	LastHostDate   string `json:"last_host_date,omitempty"`
	DaysInactive   int    `json:"days_inactive"`

	MustSailRank bool `json:"must_sail_rank"`
	CanHostRank  bool `json:"can_host_rank"`
	ChatActivity int  `json:"chat_activity"`
}

// DefaultSquad is the bucket for members whose squad cell is blank.
const DefaultSquad = "Unassigned"
