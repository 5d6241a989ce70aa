package metadata

// Tag identifies an element in exiftool's XML output by namespace prefix and
// local name. An empty namespace matches the name under any prefix.
type Tag struct {
	Namespace string
	Name      string
}

func (t Tag) String() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + ":" + t.Name
}

func (t Tag) xpath() string {
	if t.Namespace == "" {
		return "//*[local-name()='" + t.Name + "']"
	}
	return "//" + t.String()
}

var (
	tagByLine              = Tag{"IPTC", "By-line"}
	tagCity                = Tag{"IPTC", "City"}
	tagCaption             = Tag{"IPTC", "Caption-Abstract"}
	tagDateCreated         = Tag{"ExifIFD", "CreateDate"}
	tagKeywords            = Tag{"IPTC", "Keywords"}
	tagObjectName          = Tag{"IPTC", "ObjectName"}
	tagHeadline            = Tag{"IPTC", "Headline"}
	tagProvince            = Tag{"IPTC", "Province-State"}
	tagPrimaryLocationName = Tag{"", "Country-PrimaryLocationName"}
	tagSubLocation         = Tag{"IPTC", "Sub-location"}
)

// base64Datatype marks values exiftool could not express as text.
const base64Datatype = "http://www.w3.org/2001/XMLSchema#base64Binary"
