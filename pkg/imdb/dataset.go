package imdb

// Dataset identifies one of the IMDb non-commercial data extracts.
type Dataset string

const (
	NameBasics      Dataset = "name.basics"
	TitleBasics     Dataset = "title.basics"
	TitlePrincipals Dataset = "title.principals"
	TitleRatings    Dataset = "title.ratings"
)

// Filename returns the remote file name for the dataset. The cached copy
// keeps the same name.
func (d Dataset) Filename() string {
	return string(d) + ".tsv.gz"
}

// Datasets lists every extract the pipeline needs, in download order.
func Datasets() []Dataset {
	return []Dataset{NameBasics, TitleBasics, TitlePrincipals, TitleRatings}
}

// Column names as they appear in the dataset header rows.
const (
	ColNConst            = "nconst"
	ColTConst            = "tconst"
	ColPrimaryName       = "primaryName"
	ColPrimaryProfession = "primaryProfession"
	ColPrimaryTitle      = "primaryTitle"
	ColTitleType         = "titleType"
	ColCategory          = "category"
	ColAverageRating     = "averageRating"
	ColNumVotes          = "numVotes"
)
