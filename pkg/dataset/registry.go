/*
Copyright © 2025 OpenGeodata Sweden
SPDX-License-Identifier: Apache-2.0
*/

package dataset

// Column names shared across the reference files.
const (
	ColCountyCode            = "county_code"
	ColCountyName            = "county_name"
	ColCountyNameShort       = "county_name_short"
	ColMunicipalityCode      = "municipality_code"
	ColMunicipalityName      = "municipality_name"
	ColMunicipalityNameShort = "municipality_name_short"
	ColPostalCode            = "postal_code"
	ColLocality              = "locality"
)

// Code widths for the Swedish administrative code formats.
const (
	CountyCodeLength       = 2
	MunicipalityCodeLength = 4
	PostalCodeLength       = 5
)

// Registry is the set of reference datasets a validation run operates on.
// The defaults describe the published files; tests substitute registries
// with different row-count expectations.
type Registry struct {
	Counties           Dataset
	Municipalities     Dataset
	MunicipalityCounty Dataset
	Postal             Dataset
}

// All returns the datasets in validation order.
func (r Registry) All() []Dataset {
	return []Dataset{r.Counties, r.Municipalities, r.MunicipalityCounty, r.Postal}
}

// DefaultRegistry returns the registry for the published reference data:
// 21 counties, 290 municipalities, the denormalized join of the two, and
// the postal-code mapping with no fixed row count.
func DefaultRegistry() Registry {
	return Registry{
		Counties: Dataset{
			Name:      "counties",
			Filename:  "counties.csv",
			Header:    []string{ColCountyCode, ColCountyName, ColCountyNameShort},
			KeyColumn: ColCountyCode,
			CodeColumns: []CodeColumn{
				{Name: ColCountyCode, Length: CountyCodeLength},
			},
			NameColumns:  []string{ColCountyName, ColCountyNameShort},
			ExpectedRows: 21,
		},
		Municipalities: Dataset{
			Name:     "municipalities",
			Filename: "municipalities.csv",
			Header: []string{
				ColMunicipalityCode,
				ColMunicipalityName,
				ColMunicipalityNameShort,
				ColCountyCode,
			},
			KeyColumn: ColMunicipalityCode,
			CodeColumns: []CodeColumn{
				{Name: ColMunicipalityCode, Length: MunicipalityCodeLength},
				{Name: ColCountyCode, Length: CountyCodeLength},
			},
			NameColumns:  []string{ColMunicipalityName, ColMunicipalityNameShort},
			ExpectedRows: 290,
		},
		MunicipalityCounty: Dataset{
			Name:     "municipality_county",
			Filename: "municipality_county.csv",
			Header: []string{
				ColMunicipalityCode,
				ColMunicipalityName,
				ColMunicipalityNameShort,
				ColCountyCode,
				ColCountyName,
				ColCountyNameShort,
			},
			KeyColumn: ColMunicipalityCode,
			CodeColumns: []CodeColumn{
				{Name: ColMunicipalityCode, Length: MunicipalityCodeLength},
				{Name: ColCountyCode, Length: CountyCodeLength},
			},
			NameColumns: []string{
				ColMunicipalityName,
				ColMunicipalityNameShort,
				ColCountyName,
				ColCountyNameShort,
			},
			ExpectedRows: 290,
		},
		Postal: Dataset{
			Name:     "postal_to_municipality",
			Filename: "postal_to_municipality.csv",
			Header: []string{
				ColPostalCode,
				ColLocality,
				ColMunicipalityCode,
				ColMunicipalityName,
			},
			KeyColumn: ColPostalCode,
			CodeColumns: []CodeColumn{
				{Name: ColPostalCode, Length: PostalCodeLength},
				{Name: ColMunicipalityCode, Length: MunicipalityCodeLength},
			},
			NameColumns: []string{ColLocality, ColMunicipalityName},
		},
	}
}
