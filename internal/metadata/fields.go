package metadata

// Fields is the snapshot of every tag the title composer reads.
type Fields struct {
	ByLine              string
	City                string
	Caption             string
	DateCreated         string
	Keywords            []string
	ObjectName          string
	Headline            string
	Province            string
	PrimaryLocationName string
	SubLocation         string
}

func (r *Reader) ByLine() string              { return r.Scalar(tagByLine) }
func (r *Reader) City() string                { return r.Scalar(tagCity) }
func (r *Reader) Caption() string             { return r.Scalar(tagCaption) }
func (r *Reader) DateCreated() string         { return r.Scalar(tagDateCreated) }
func (r *Reader) Keywords() []string          { return r.Bag(tagKeywords) }
func (r *Reader) ObjectName() string          { return r.Scalar(tagObjectName) }
func (r *Reader) Headline() string            { return r.Scalar(tagHeadline) }
func (r *Reader) Province() string            { return r.Scalar(tagProvince) }
func (r *Reader) PrimaryLocationName() string { return r.Scalar(tagPrimaryLocationName) }
func (r *Reader) SubLocation() string         { return r.Scalar(tagSubLocation) }

// Fields reads every title-relevant tag at once.
func (r *Reader) Fields() Fields {
	return Fields{
		ByLine:              r.ByLine(),
		City:                r.City(),
		Caption:             r.Caption(),
		DateCreated:         r.DateCreated(),
		Keywords:            r.Keywords(),
		ObjectName:          r.ObjectName(),
		Headline:            r.Headline(),
		Province:            r.Province(),
		PrimaryLocationName: r.PrimaryLocationName(),
		SubLocation:         r.SubLocation(),
	}
}
