package validation

const (
	FieldPayeeName                 = "payeeName"
	FieldPartPostcode              = "partPostcode"
	FieldTown                      = "town"
	FieldParliamentaryConstituency = "parliamentaryConstituency"
	FieldCountyCouncil             = "countyCouncil"
	FieldScheme                    = "scheme"
	FieldAmount                    = "amount"
	FieldFinancialYear             = "financialYear"
	FieldPaymentDateDay            = "paymentDateDay"
	FieldPaymentDateMonth          = "paymentDateMonth"
	FieldPaymentDateYear           = "paymentDateYear"
	FieldSchemeDetail              = "schemeDetail"
	FieldActivityLevel             = "activityLevel"

	FieldConfirm            = "confirm"
	FieldPublishedDateDay   = "publishedDateDay"
	FieldPublishedDateMonth = "publishedDateMonth"
	FieldPublishedDateYear  = "publishedDateYear"

	FieldTotalAmount = "totalAmount"

	FieldPage         = "page"
	FieldSearchString = "searchString"
)

const ConfirmYes = "yes"

var PaymentSchema = Schema{
	{Name: FieldPayeeName, Required: true, MaxLength: 128},
	{Name: FieldPartPostcode, Required: true, MaxLength: 8},
	{Name: FieldTown, MaxLength: 128},
	{Name: FieldParliamentaryConstituency, MaxLength: 64},
	{Name: FieldCountyCouncil, MaxLength: 128},
	{Name: FieldScheme, MaxLength: 64},
	{Name: FieldAmount, Kind: KindNumber, Required: true},
	{Name: FieldFinancialYear, Required: true, MaxLength: 8},
	{Name: FieldPaymentDateDay, Kind: KindInteger, Min: 1, Max: 31},
	{Name: FieldPaymentDateMonth, Kind: KindInteger, Min: 1, Max: 12},
	{Name: FieldPaymentDateYear, Kind: KindInteger, Min: 1900, Max: 2100},
	{Name: FieldSchemeDetail, MaxLength: 128},
	{Name: FieldActivityLevel, MaxLength: 64},
}

var DeleteByYearSchema = Schema{
	{Name: FieldFinancialYear, Required: true, MaxLength: 8},
	{Name: FieldConfirm, Required: true, OneOf: []string{ConfirmYes}},
}

var DeleteByPublishedDateSchema = Schema{
	{Name: FieldPublishedDateDay, Kind: KindInteger, Required: true, Min: 1, Max: 31},
	{Name: FieldPublishedDateMonth, Kind: KindInteger, Required: true, Min: 1, Max: 12},
	{Name: FieldPublishedDateYear, Kind: KindInteger, Required: true, Min: 2000, Max: 2100},
	{Name: FieldConfirm, Required: true, OneOf: []string{ConfirmYes}},
}

var BulkSetPublishedDateSchema = Schema{
	{Name: FieldFinancialYear, Required: true, MaxLength: 8},
	{Name: FieldPublishedDateDay, Kind: KindInteger, Required: true, Min: 1, Max: 31},
	{Name: FieldPublishedDateMonth, Kind: KindInteger, Required: true, Min: 1, Max: 12},
	{Name: FieldPublishedDateYear, Kind: KindInteger, Required: true, Min: 1900, Max: 2100},
}

var SummarySchema = Schema{
	{Name: FieldFinancialYear, Required: true, MaxLength: 8},
	{Name: FieldScheme, Required: true, MaxLength: 64},
	{Name: FieldTotalAmount, Kind: KindNumber, Required: true},
}

var ListPaymentsQuerySchema = Schema{
	{Name: FieldPage, Kind: KindInteger, Min: 1, Default: "1"},
	{Name: FieldSearchString},
}
