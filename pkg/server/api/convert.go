package api

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/rating"
	"droscher.com/BrewLog/pkg/validation"
)

const createdFinishedMessage = "コーヒー豆は在庫中 (IN_STOCK) の状態でのみ登録できます"

// text normalises optional free text: blank strings are stored as null.
func text(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func setText(dst **string, src *string) {
	if src != nil {
		*dst = text(src)
	}
}

func setValue[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPointer[T any](dst **T, src *T) {
	if src != nil {
		value := *src
		*dst = &value
	}
}

// setLevel and setLevelPointer store a validated whole-number score.
func setLevel(dst *int, src *float64) {
	if src != nil {
		*dst = int(*src)
	}
}

func setLevelPointer(dst **int, src *float64) {
	if src != nil {
		value := int(*src)
		*dst = &value
	}
}

// setReference treats an id of 0 as "remove the reference".
func setReference(dst **uint, src *uint) {
	if src == nil {
		return
	}

	if *src == 0 {
		*dst = nil

		return
	}

	id := *src
	*dst = &id
}

func price(value *decimal.Decimal) (decimal.NullDecimal, error) {
	if value == nil {
		return decimal.NullDecimal{}, nil
	}

	if value.IsNegative() {
		return decimal.NullDecimal{}, validation.OutOfRange("price", validation.PositiveRange)
	}

	return decimal.NewNullDecimal(*value), nil
}

func nullDecimal(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}

	return &value.Decimal
}

func tags(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func cleanTags(values []string) datatypes.JSONSlice[string] {
	cleaned := make(datatypes.JSONSlice[string], 0, len(values))

	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return cleaned
}

func (r CreateBeanRequest) ToModel() (model.CoffeeBean, error) {
	if r.Status != nil && *r.Status != model.StatusInStock {
		return model.CoffeeBean{}, validation.InvalidState("status", createdFinishedMessage)
	}

	bean := model.CoffeeBean{Name: strings.TrimSpace(r.Name), Status: model.StatusInStock}

	return bean, r.BeanFields.applyTo(&bean)
}

func (r UpdateBeanRequest) ApplyTo(bean *model.CoffeeBean) error {
	if r.Name != nil {
		bean.Name = strings.TrimSpace(*r.Name)
	}

	return r.BeanFields.applyTo(bean)
}

func (f BeanFields) applyTo(bean *model.CoffeeBean) error {
	setText(&bean.Origin, f.Origin)
	setPointer(&bean.RoastLevel, f.RoastLevel)
	setPointer(&bean.Process, f.Process)
	setPointer(&bean.BeanType, f.BeanType)
	setValue(&bean.IsDecaf, f.IsDecaf)
	setLevel(&bean.AcidityScore, f.AcidityScore)
	setLevel(&bean.BitternessScore, f.BitternessScore)
	setLevel(&bean.BodyScore, f.BodyScore)
	setLevel(&bean.FlavorScore, f.FlavorScore)
	setPointer(&bean.Amount, f.Amount)
	setReference(&bean.ShopID, f.ShopID)
	setReference(&bean.BeanMasterID, f.BeanMasterID)
	setText(&bean.ImagePath, f.ImagePath)
	setText(&bean.Notes, f.Notes)

	if f.PurchaseDate != nil {
		bean.PurchaseDate = f.PurchaseDate.Ptr()
	}

	if f.Price != nil {
		value, err := price(f.Price)
		if err != nil {
			return err
		}

		bean.Price = value
	}

	return nil
}

func BeansFromModel(beans []*model.CoffeeBean) []BeanResponse {
	responses := make([]BeanResponse, 0, len(beans))

	for _, bean := range beans {
		responses = append(responses, BeanFromModel(bean))
	}

	return responses
}

func BeanFromModel(bean *model.CoffeeBean) BeanResponse {
	response := BeanResponse{
		ID:              bean.ID,
		Name:            bean.Name,
		Origin:          bean.Origin,
		RoastLevel:      bean.RoastLevel,
		Process:         bean.Process,
		BeanType:        bean.BeanType,
		IsDecaf:         bean.IsDecaf,
		AcidityScore:    bean.AcidityScore,
		BitternessScore: bean.BitternessScore,
		BodyScore:       bean.BodyScore,
		FlavorScore:     bean.FlavorScore,
		Status:          bean.Status,
		FinishedDate:    bean.FinishedDate,
		PurchaseDate:    bean.PurchaseDate,
		Price:           nullDecimal(bean.Price),
		Amount:          bean.Amount,
		ShopID:          bean.ShopID,
		BeanMasterID:    bean.BeanMasterID,
		ImagePath:       bean.ImagePath,
		Notes:           bean.Notes,
		CreatedAt:       bean.CreatedAt,
		UpdatedAt:       bean.UpdatedAt,
	}

	if bean.Shop != nil {
		shop := ShopFromModel(bean.Shop)
		response.Shop = &shop
	}

	if bean.BeanMaster != nil {
		response.BeanMaster = &BeanMasterRef{ID: bean.BeanMaster.ID, Name: bean.BeanMaster.Name}
	}

	return response
}

func BeanDraftFromModel(draft *model.BeanDraft) BeanDraftResponse {
	return BeanDraftResponse{
		Name:        draft.Name,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		Price:       nullDecimal(draft.Price),
		ShopName:    draft.ShopName,
		SourceURL:   draft.SourceURL,
		Source:      draft.Source,
	}
}

func (r CreateBeanMasterRequest) ToModel() model.BeanMaster {
	master := model.BeanMaster{Name: strings.TrimSpace(r.Name)}
	r.BeanMasterFields.applyTo(&master)

	return master
}

func (r UpdateBeanMasterRequest) ApplyTo(master *model.BeanMaster) {
	if r.Name != nil {
		master.Name = strings.TrimSpace(*r.Name)
	}

	r.BeanMasterFields.applyTo(master)
}

func (f BeanMasterFields) applyTo(master *model.BeanMaster) {
	setReference(&master.OriginID, f.OriginID)
	setPointer(&master.RoastLevel, f.RoastLevel)
	setPointer(&master.Process, f.Process)
	setText(&master.Notes, f.Notes)
}

func BeanMastersFromModel(masters []*model.BeanMaster) []BeanMasterResponse {
	responses := make([]BeanMasterResponse, 0, len(masters))

	for _, master := range masters {
		responses = append(responses, BeanMasterFromModel(master))
	}

	return responses
}

func BeanMasterFromModel(master *model.BeanMaster) BeanMasterResponse {
	response := BeanMasterResponse{
		ID:            master.ID,
		Name:          master.Name,
		OriginID:      master.OriginID,
		RoastLevel:    master.RoastLevel,
		Process:       master.Process,
		Notes:         master.Notes,
		PurchaseCount: len(master.CoffeeBeans),
		CreatedAt:     master.CreatedAt,
		UpdatedAt:     master.UpdatedAt,
	}

	if master.Origin != nil {
		origin := OriginFromModel(master.Origin)
		response.Origin = &origin
	}

	return response
}

func (r CreateOriginRequest) ToModel() model.OriginMaster {
	return model.OriginMaster{Name: strings.TrimSpace(r.Name), Region: text(r.Region)}
}

func (r UpdateOriginRequest) ApplyTo(origin *model.OriginMaster) {
	if r.Name != nil {
		origin.Name = strings.TrimSpace(*r.Name)
	}

	setText(&origin.Region, r.Region)
}

func OriginsFromModel(origins []*model.OriginMaster) []OriginResponse {
	responses := make([]OriginResponse, 0, len(origins))

	for _, origin := range origins {
		responses = append(responses, OriginFromModel(origin))
	}

	return responses
}

func OriginFromModel(origin *model.OriginMaster) OriginResponse {
	return OriginResponse{
		ID:        origin.ID,
		Name:      origin.Name,
		Region:    origin.Region,
		CreatedAt: origin.CreatedAt,
		UpdatedAt: origin.UpdatedAt,
	}
}

func (r CreateShopRequest) ToModel() model.Shop {
	shop := model.Shop{BrandName: text(r.BrandName), Name: text(r.Name)}
	r.ShopFields.applyTo(&shop)

	return shop
}

// ApplyTo merges the update into shop. The merged shop must still carry a
// brand name or a branch name.
func (r UpdateShopRequest) ApplyTo(shop *model.Shop) error {
	setText(&shop.BrandName, r.BrandName)
	setText(&shop.Name, r.Name)
	r.ShopFields.applyTo(shop)

	if shop.DisplayName() == "" {
		return &validation.Error{
			Kind:    validation.ErrRequiredFieldMissing,
			Field:   "brandName",
			Message: "brandName または name のいずれかは必須です",
		}
	}

	return nil
}

func (f ShopFields) applyTo(shop *model.Shop) {
	setText(&shop.Address, f.Address)
	setText(&shop.URL, f.URL)
	setText(&shop.Notes, f.Notes)
}

func ShopsFromModel(shops []*model.Shop) []ShopResponse {
	responses := make([]ShopResponse, 0, len(shops))

	for _, shop := range shops {
		responses = append(responses, ShopFromModel(shop))
	}

	return responses
}

func ShopFromModel(shop *model.Shop) ShopResponse {
	return ShopResponse{
		ID:          shop.ID,
		BrandName:   shop.BrandName,
		Name:        shop.Name,
		DisplayName: shop.DisplayName(),
		Address:     shop.Address,
		URL:         shop.URL,
		Notes:       shop.Notes,
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}

func (r CreateDripperRequest) ToModel() model.Dripper {
	dripper := model.Dripper{Name: strings.TrimSpace(r.Name)}
	r.DripperFields.applyTo(&dripper)

	return dripper
}

func (r UpdateDripperRequest) ApplyTo(dripper *model.Dripper) {
	if r.Name != nil {
		dripper.Name = strings.TrimSpace(*r.Name)
	}

	r.DripperFields.applyTo(dripper)
}

func (f DripperFields) applyTo(dripper *model.Dripper) {
	setText(&dripper.Manufacturer, f.Manufacturer)
	setPointer(&dripper.Size, f.Size)
	setText(&dripper.ImagePath, f.ImagePath)
	setText(&dripper.Notes, f.Notes)
}

func DrippersFromModel(drippers []*model.Dripper) []DripperResponse {
	responses := make([]DripperResponse, 0, len(drippers))

	for _, dripper := range drippers {
		responses = append(responses, DripperFromModel(dripper))
	}

	return responses
}

func DripperFromModel(dripper *model.Dripper) DripperResponse {
	return DripperResponse{
		ID:           dripper.ID,
		Name:         dripper.Name,
		Manufacturer: dripper.Manufacturer,
		Size:         dripper.Size,
		ImagePath:    dripper.ImagePath,
		Notes:        dripper.Notes,
		CreatedAt:    dripper.CreatedAt,
		UpdatedAt:    dripper.UpdatedAt,
	}
}

func (r CreateFilterRequest) ToModel() model.Filter {
	filter := model.Filter{Name: strings.TrimSpace(r.Name)}
	r.FilterFields.applyTo(&filter)

	return filter
}

func (r UpdateFilterRequest) ApplyTo(filter *model.Filter) {
	if r.Name != nil {
		filter.Name = strings.TrimSpace(*r.Name)
	}

	r.FilterFields.applyTo(filter)
}

func (f FilterFields) applyTo(filter *model.Filter) {
	setPointer(&filter.Type, f.Type)
	setPointer(&filter.Size, f.Size)
	setText(&filter.ImagePath, f.ImagePath)
	setText(&filter.Notes, f.Notes)
}

func FiltersFromModel(filters []*model.Filter) []FilterResponse {
	responses := make([]FilterResponse, 0, len(filters))

	for _, filter := range filters {
		responses = append(responses, FilterFromModel(filter))
	}

	return responses
}

func FilterFromModel(filter *model.Filter) FilterResponse {
	return FilterResponse{
		ID:        filter.ID,
		Name:      filter.Name,
		Type:      filter.Type,
		Size:      filter.Size,
		ImagePath: filter.ImagePath,
		Notes:     filter.Notes,
		CreatedAt: filter.CreatedAt,
		UpdatedAt: filter.UpdatedAt,
	}
}

// ToModel builds a tasting, brewed now unless the request says otherwise.
func (r CreateTastingRequest) ToModel(now time.Time) model.TastingEntry {
	tasting := model.TastingEntry{CoffeeBeanID: r.CoffeeBeanID, BrewDate: now}
	r.TastingFields.applyTo(&tasting)

	return tasting
}

func (r UpdateTastingRequest) ApplyTo(tasting *model.TastingEntry) {
	setValue(&tasting.CoffeeBeanID, r.CoffeeBeanID)
	r.TastingFields.applyTo(tasting)
}

func (f TastingFields) applyTo(tasting *model.TastingEntry) {
	setReference(&tasting.DripperID, f.DripperID)
	setReference(&tasting.FilterID, f.FilterID)
	setPointer(&tasting.GrindSize, f.GrindSize)
	setPointer(&tasting.WaterTemperature, f.WaterTemperature)
	setPointer(&tasting.DoseGrams, f.DoseGrams)
	setPointer(&tasting.WaterGrams, f.WaterGrams)
	setPointer(&tasting.BrewTimeSeconds, f.BrewTimeSeconds)
	setText(&tasting.Notes, f.Notes)
	setText(&tasting.ImagePath, f.ImagePath)
	setLevelPointer(&tasting.Acidity, f.Acidity)
	setLevelPointer(&tasting.Bitterness, f.Bitterness)
	setLevelPointer(&tasting.Sweetness, f.Sweetness)
	setPointer(&tasting.Body, f.Body)
	setLevelPointer(&tasting.Aftertaste, f.Aftertaste)
	setLevelPointer(&tasting.OverallRating, f.OverallRating)

	if f.BrewDate != nil && !f.BrewDate.IsZero() {
		tasting.BrewDate = f.BrewDate.Time
	}

	if f.FlavorTags != nil {
		tasting.FlavorTags = cleanTags(f.FlavorTags)
	}
}

func TastingsFromModel(tastings []*model.TastingEntry) []TastingResponse {
	responses := make([]TastingResponse, 0, len(tastings))

	for _, tasting := range tastings {
		responses = append(responses, TastingFromModel(tasting))
	}

	return responses
}

func TastingFromModel(tasting *model.TastingEntry) TastingResponse {
	response := TastingResponse{
		ID:               tasting.ID,
		CoffeeBeanID:     tasting.CoffeeBeanID,
		DripperID:        tasting.DripperID,
		FilterID:         tasting.FilterID,
		GrindSize:        tasting.GrindSize,
		BrewDate:         tasting.BrewDate,
		Acidity:          tasting.Acidity,
		Bitterness:       tasting.Bitterness,
		Sweetness:        tasting.Sweetness,
		Body:             tasting.Body,
		Aftertaste:       tasting.Aftertaste,
		OverallRating:    tasting.OverallRating,
		FlavorTags:       tags(tasting.FlavorTags),
		WaterTemperature: tasting.WaterTemperature,
		DoseGrams:        tasting.DoseGrams,
		WaterGrams:       tasting.WaterGrams,
		BrewTimeSeconds:  tasting.BrewTimeSeconds,
		Notes:            tasting.Notes,
		ImagePath:        tasting.ImagePath,
		TastingNotes:     make([]TastingNoteResponse, 0, len(tasting.TastingNotes)),
		CreatedAt:        tasting.CreatedAt,
		UpdatedAt:        tasting.UpdatedAt,
	}

	if tasting.CoffeeBean.ID != 0 {
		bean := BeanRef{ID: tasting.CoffeeBean.ID, Name: tasting.CoffeeBean.Name, Status: tasting.CoffeeBean.Status}
		if tasting.CoffeeBean.Shop != nil {
			bean.ShopName = tasting.CoffeeBean.Shop.DisplayName()
		}

		response.CoffeeBean = &bean
	}

	if tasting.Dripper != nil {
		dripper := DripperFromModel(tasting.Dripper)
		response.Dripper = &dripper
	}

	if tasting.Filter != nil {
		filter := FilterFromModel(tasting.Filter)
		response.Filter = &filter
	}

	ratings := make([]rating.Ratings, 0, len(tasting.TastingNotes))

	for i := range tasting.TastingNotes {
		note := &tasting.TastingNotes[i]
		response.TastingNotes = append(response.TastingNotes, TastingNoteFromModel(note))
		ratings = append(ratings, rating.Ratings{
			OverallRating: note.OverallRating,
			Acidity:       note.Acidity,
			Bitterness:    note.Bitterness,
			Sweetness:     note.Sweetness,
			Aftertaste:    note.Aftertaste,
		})
	}

	summary := rating.Summarize(ratings)
	response.NoteCount = summary.NoteCount

	if summary.Average != nil {
		response.AverageRating = &RatingAverages{
			OverallRating: summary.Average.OverallRating,
			Acidity:       summary.Average.Acidity,
			Bitterness:    summary.Average.Bitterness,
			Sweetness:     summary.Average.Sweetness,
			Aftertaste:    summary.Average.Aftertaste,
		}
	}

	return response
}

func (r CreateTastingNoteRequest) ToModel() model.TastingNote {
	note := model.TastingNote{TastingEntryID: r.TastingEntryID, TasterName: strings.TrimSpace(r.TasterName)}
	r.TastingNoteFields.applyTo(&note)

	return note
}

func (r UpdateTastingNoteRequest) ApplyTo(note *model.TastingNote) {
	setValue(&note.TastingEntryID, r.TastingEntryID)

	if r.TasterName != nil {
		note.TasterName = strings.TrimSpace(*r.TasterName)
	}

	r.TastingNoteFields.applyTo(note)
}

func (f TastingNoteFields) applyTo(note *model.TastingNote) {
	setText(&note.Notes, f.Notes)
	setLevelPointer(&note.Acidity, f.Acidity)
	setLevelPointer(&note.Bitterness, f.Bitterness)
	setLevelPointer(&note.Sweetness, f.Sweetness)
	setPointer(&note.Body, f.Body)
	setLevelPointer(&note.Aftertaste, f.Aftertaste)
	setLevelPointer(&note.OverallRating, f.OverallRating)

	if f.FlavorTags != nil {
		note.FlavorTags = cleanTags(f.FlavorTags)
	}
}

func TastingNotesFromModel(notes []*model.TastingNote) []TastingNoteResponse {
	responses := make([]TastingNoteResponse, 0, len(notes))

	for _, note := range notes {
		responses = append(responses, TastingNoteFromModel(note))
	}

	return responses
}

func TastingNoteFromModel(note *model.TastingNote) TastingNoteResponse {
	return TastingNoteResponse{
		ID:             note.ID,
		TastingEntryID: note.TastingEntryID,
		TasterName:     note.TasterName,
		Acidity:        note.Acidity,
		Bitterness:     note.Bitterness,
		Sweetness:      note.Sweetness,
		Body:           note.Body,
		Aftertaste:     note.Aftertaste,
		OverallRating:  note.OverallRating,
		FlavorTags:     tags(note.FlavorTags),
		Notes:          note.Notes,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}

func StatsFromModel(stats *model.JournalStats, top []model.BeanRanking) StatsResponse {
	response := StatsResponse{
		BeanCount:            stats.BeanCount,
		InStockCount:         stats.InStockCount,
		FinishedCount:        stats.FinishedCount,
		TotalSpent:           stats.TotalSpent.Decimal,
		ShopCount:            stats.ShopCount,
		TastingCount:         stats.TastingCount,
		TastingNoteCount:     stats.TastingNoteCount,
		AverageOverallRating: stats.AverageOverallRating,
		TopBeans:             make([]BeanRankingResponse, 0, len(top)),
	}

	if response.AverageOverallRating != nil {
		rounded := rating.RoundTenth(*response.AverageOverallRating)
		response.AverageOverallRating = &rounded
	}

	for _, ranking := range top {
		response.TopBeans = append(response.TopBeans, BeanRankingResponse{
			CoffeeBeanID:  ranking.CoffeeBeanID,
			Name:          ranking.Name,
			TastingCount:  ranking.TastingCount,
			AverageRating: rating.RoundTenth(ranking.AverageRating),
		})
	}

	return response
}
