package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BrewLog/configs"
	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server"
	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/storage"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// JournalTestSuite drives the full router against a SQLite journal.
type JournalTestSuite struct {
	suite.Suite
	repository   *repository.Repository
	router       *gin.Engine
	imageDir     string
	observedLogs *observer.ObservedLogs
}

func TestJournalTestSuite(t *testing.T) {
	suite.Run(t, new(JournalTestSuite))
}

func (suite *JournalTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	dir := suite.T().TempDir()
	conf := &configs.Config{DB: configs.DB{Driver: configs.DriverSQLite, Path: filepath.Join(dir, "brewlog.db")}}

	repo, err := repository.Open(conf, logger)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate())
	suite.repository = repo

	suite.imageDir = filepath.Join(dir, "images")
	store, err := storage.NewLocalStore(suite.imageDir)
	suite.Require().NoError(err)

	suite.router, err = server.NewRouter(server.Dependencies{
		Store:    repo,
		Images:   storage.NewImages(store, 1<<20, logger),
		ImageDir: suite.imageDir,
	}, logger)
	suite.Require().NoError(err)
}

func (suite *JournalTestSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *JournalTestSuite) do(method string, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	switch value := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(value))
	default:
		encoded, err := json.Marshal(value)
		suite.Require().NoError(err)

		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func decode[T any](suite *JournalTestSuite, recorder *httptest.ResponseRecorder) T {
	var value T

	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &value), recorder.Body.String())

	return value
}

func (suite *JournalTestSuite) errorMessage(recorder *httptest.ResponseRecorder) string {
	return decode[api.ErrorResponse](suite, recorder).Error
}

func (suite *JournalTestSuite) createBean(body map[string]any) api.BeanResponse {
	recorder := suite.do(http.MethodPost, "/api/beans", body)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	return decode[api.BeanResponse](suite, recorder)
}

func (suite *JournalTestSuite) createTasting(body map[string]any) api.TastingResponse {
	recorder := suite.do(http.MethodPost, "/api/tastings", body)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	return decode[api.TastingResponse](suite, recorder)
}

func (suite *JournalTestSuite) TestEmptyListsAreArrays() {
	for _, path := range []string{
		"/api/beans", "/api/bean-masters", "/api/origins", "/api/shops",
		"/api/drippers", "/api/filters", "/api/tastings", "/api/tasting-notes",
	} {
		recorder := suite.do(http.MethodGet, path, nil)

		suite.Equal(http.StatusOK, recorder.Code, path)
		suite.JSONEq("[]", recorder.Body.String(), path)
	}
}

func (suite *JournalTestSuite) TestBean_CreateAndGet() {
	bean := suite.createBean(map[string]any{
		"name":         "エチオピア イルガチェフェ",
		"roastLevel":   "LIGHT",
		"acidityScore": 5,
		"purchaseDate": "2024-04-01",
		"price":        1800,
	})

	suite.NotZero(bean.ID)
	suite.Equal("IN_STOCK", bean.Status)
	suite.Equal(5, bean.AcidityScore)
	suite.Nil(bean.FinishedDate)
	suite.Require().NotNil(bean.PurchaseDate)
	suite.Equal("2024-04-01", bean.PurchaseDate.Format("2006-01-02"))

	recorder := suite.do(http.MethodGet, fmt.Sprintf("/api/beans/%d", bean.ID), nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("エチオピア イルガチェフェ", decode[api.BeanResponse](suite, recorder).Name)
}

func (suite *JournalTestSuite) TestBean_ValidationFailures() {
	cases := map[string]map[string]any{
		"score out of range": {"name": "ケニア", "acidityScore": 6},
		"blank name":         {"name": "   "},
		"unknown roast":      {"name": "ケニア", "roastLevel": "BURNT"},
		"empty enum":         {"name": "ケニア", "process": ""},
		"finished on create": {"name": "ケニア", "status": "FINISHED"},
		"negative price":     {"name": "ケニア", "price": -1},
		"unknown shop":       {"name": "ケニア", "shopId": 99},
	}

	for name, body := range cases {
		recorder := suite.do(http.MethodPost, "/api/beans", body)

		suite.Equal(http.StatusBadRequest, recorder.Code, name)
		suite.NotEmpty(suite.errorMessage(recorder), name)
	}

	suite.Contains(suite.errorMessage(suite.do(http.MethodPost, "/api/beans", cases["score out of range"])), "acidityScore")
}

func (suite *JournalTestSuite) TestFractionalScoresAreOutOfRange() {
	recorder := suite.do(http.MethodPost, "/api/beans", map[string]any{"name": "ケニア", "acidityScore": 2.5})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("acidityScore は 0 から 5 の範囲で指定してください", suite.errorMessage(recorder))

	bean := suite.createBean(map[string]any{"name": "ケニア", "acidityScore": 3.0})
	suite.Equal(3, bean.AcidityScore)

	recorder = suite.do(http.MethodPost, "/api/tastings", map[string]any{"coffeeBeanId": bean.ID, "acidity": 3.5})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("acidity は 1 から 5 の範囲で指定してください", suite.errorMessage(recorder))

	recorder = suite.do(http.MethodPost, "/api/tastings", map[string]any{"coffeeBeanId": bean.ID, "doseGrams": 0})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "doseGrams")
}

func (suite *JournalTestSuite) TestBean_BadIDAndMissingRow() {
	recorder := suite.do(http.MethodGet, "/api/beans/abc", nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)

	recorder = suite.do(http.MethodGet, "/api/beans/999", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Equal("コーヒー豆が見つかりません", suite.errorMessage(recorder))

	recorder = suite.do(http.MethodDelete, "/api/beans/999", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *JournalTestSuite) TestBean_StatusTransitions() {
	bean := suite.createBean(map[string]any{"name": "グアテマラ"})
	path := fmt.Sprintf("/api/beans/%d", bean.ID)

	recorder := suite.do(http.MethodPatch, path, map[string]any{"status": "FINISHED"})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	finished := decode[api.BeanResponse](suite, recorder)
	suite.Equal("FINISHED", finished.Status)
	suite.NotNil(finished.FinishedDate)

	recorder = suite.do(http.MethodPatch, path, map[string]any{"status": "IN_STOCK"})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	restocked := decode[api.BeanResponse](suite, recorder)
	suite.Equal("IN_STOCK", restocked.Status)
	suite.Nil(restocked.FinishedDate)

	recorder = suite.do(http.MethodPatch, path, map[string]any{"status": "GONE"})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *JournalTestSuite) TestBean_UpdateClearsText() {
	bean := suite.createBean(map[string]any{"name": "コロンビア", "notes": "華やか", "origin": "ウィラ"})

	recorder := suite.do(http.MethodPut, fmt.Sprintf("/api/beans/%d", bean.ID), map[string]any{"notes": ""})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	updated := decode[api.BeanResponse](suite, recorder)
	suite.Nil(updated.Notes)
	suite.Require().NotNil(updated.Origin)
	suite.Equal("ウィラ", *updated.Origin)
	suite.Equal("コロンビア", updated.Name)
}

func (suite *JournalTestSuite) TestTasting_RequiresStockedBean() {
	bean := suite.createBean(map[string]any{"name": "ブラジル"})
	suite.Require().Equal(http.StatusOK,
		suite.do(http.MethodPatch, fmt.Sprintf("/api/beans/%d", bean.ID), map[string]any{"status": "FINISHED"}).Code)

	recorder := suite.do(http.MethodPost, "/api/tastings", map[string]any{"coffeeBeanId": bean.ID})

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "在庫中")
}

func (suite *JournalTestSuite) TestTasting_AveragesNotes() {
	bean := suite.createBean(map[string]any{"name": "ケニア"})
	tasting := suite.createTasting(map[string]any{
		"coffeeBeanId": bean.ID,
		"brewDate":     "2024-05-01",
		"grindSize":    4.5,
		"flavorTags":   []string{"ベリー", " ", "柑橘"},
	})

	suite.Nil(tasting.AverageRating)
	suite.Equal(0, tasting.NoteCount)
	suite.Equal([]string{"ベリー", "柑橘"}, tasting.FlavorTags)
	suite.Require().NotNil(tasting.CoffeeBean)
	suite.Equal("ケニア", tasting.CoffeeBean.Name)

	for taster, overall := range map[string]int{"A": 4, "B": 5, "C": 5} {
		recorder := suite.do(http.MethodPost, "/api/tasting-notes", map[string]any{
			"tastingEntryId": tasting.ID,
			"tasterName":     taster,
			"overallRating":  overall,
			"acidity":        3,
		})
		suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	recorder := suite.do(http.MethodGet, fmt.Sprintf("/api/tastings/%d", tasting.ID), nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	loaded := decode[api.TastingResponse](suite, recorder)
	suite.Equal(3, loaded.NoteCount)
	suite.Len(loaded.TastingNotes, 3)
	suite.Require().NotNil(loaded.AverageRating)
	suite.Require().NotNil(loaded.AverageRating.OverallRating)
	suite.InDelta(4.7, *loaded.AverageRating.OverallRating, 0.0001)
	suite.Require().NotNil(loaded.AverageRating.Acidity)
	suite.InDelta(3.0, *loaded.AverageRating.Acidity, 0.0001)
	suite.Nil(loaded.AverageRating.Sweetness)

	recorder = suite.do(http.MethodGet, fmt.Sprintf("/api/tasting-notes?tastingEntryId=%d", tasting.ID), nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)
	suite.Len(decode[[]api.TastingNoteResponse](suite, recorder), 3)
}

func (suite *JournalTestSuite) TestTasting_RatingOutOfRange() {
	bean := suite.createBean(map[string]any{"name": "ケニア"})

	recorder := suite.do(http.MethodPost, "/api/tastings", map[string]any{"coffeeBeanId": bean.ID, "overallRating": 0})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "overallRating")

	recorder = suite.do(http.MethodPost, "/api/tastings", map[string]any{"coffeeBeanId": bean.ID, "grindSize": 11})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *JournalTestSuite) TestDeleteBean_RemovesTastings() {
	bean := suite.createBean(map[string]any{"name": "ケニア"})
	tasting := suite.createTasting(map[string]any{"coffeeBeanId": bean.ID})

	recorder := suite.do(http.MethodDelete, fmt.Sprintf("/api/beans/%d", bean.ID), nil)
	suite.Require().Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.do(http.MethodGet, fmt.Sprintf("/api/tastings/%d", tasting.ID), nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *JournalTestSuite) TestOrigin_DuplicateName() {
	recorder := suite.do(http.MethodPost, "/api/origins", map[string]any{"name": "エチオピア"})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	recorder = suite.do(http.MethodPost, "/api/origins", map[string]any{"name": "エチオピア"})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "エチオピア")
}

func (suite *JournalTestSuite) TestBeanMaster_DeleteBlockedByBeans() {
	recorder := suite.do(http.MethodPost, "/api/bean-masters", map[string]any{"name": "ハウスブレンド"})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	master := decode[api.BeanMasterResponse](suite, recorder)
	suite.createBean(map[string]any{"name": "ハウスブレンド 4月", "beanMasterId": master.ID})

	recorder = suite.do(http.MethodGet, fmt.Sprintf("/api/bean-masters/%d", master.ID), nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)
	suite.Equal(1, decode[api.BeanMasterResponse](suite, recorder).PurchaseCount)

	recorder = suite.do(http.MethodDelete, fmt.Sprintf("/api/bean-masters/%d", master.ID), nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "削除できません")
}

func (suite *JournalTestSuite) TestShop_DisplayName() {
	recorder := suite.do(http.MethodPost, "/api/shops", map[string]any{"brandName": "やなか珈琲", "name": "谷中店"})
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	shop := decode[api.ShopResponse](suite, recorder)
	suite.Equal("やなか珈琲 谷中店", shop.DisplayName)

	recorder = suite.do(http.MethodPut, fmt.Sprintf("/api/shops/%d", shop.ID), map[string]any{"name": ""})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	suite.Equal("やなか珈琲", decode[api.ShopResponse](suite, recorder).DisplayName)

	recorder = suite.do(http.MethodPut, fmt.Sprintf("/api/shops/%d", shop.ID), map[string]any{"brandName": ""})
	suite.Equal(http.StatusBadRequest, recorder.Code)

	recorder = suite.do(http.MethodPost, "/api/shops", map[string]any{"address": "東京都台東区"})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *JournalTestSuite) TestShop_DeleteKeepsBeans() {
	recorder := suite.do(http.MethodPost, "/api/shops", map[string]any{"name": "丸山珈琲"})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	shop := decode[api.ShopResponse](suite, recorder)
	bean := suite.createBean(map[string]any{"name": "パナマ", "shopId": shop.ID})
	suite.Require().NotNil(bean.Shop)

	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodDelete, fmt.Sprintf("/api/shops/%d", shop.ID), nil).Code)

	recorder = suite.do(http.MethodGet, fmt.Sprintf("/api/beans/%d", bean.ID), nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	loaded := decode[api.BeanResponse](suite, recorder)
	suite.Nil(loaded.ShopID)
	suite.Nil(loaded.Shop)
}

func (suite *JournalTestSuite) TestEquipment_CRUD() {
	recorder := suite.do(http.MethodPost, "/api/drippers", map[string]any{"name": "V60", "size": "SIZE_02"})
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	dripper := decode[api.DripperResponse](suite, recorder)

	recorder = suite.do(http.MethodPost, "/api/filters", map[string]any{"name": "V60 ペーパー", "type": "PAPER"})
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	filter := decode[api.FilterResponse](suite, recorder)

	recorder = suite.do(http.MethodPost, "/api/filters", map[string]any{"name": "謎", "type": "PLASTIC"})
	suite.Equal(http.StatusBadRequest, recorder.Code)

	bean := suite.createBean(map[string]any{"name": "ルワンダ"})
	tasting := suite.createTasting(map[string]any{"coffeeBeanId": bean.ID, "dripperId": dripper.ID, "filterId": filter.ID})
	suite.Require().NotNil(tasting.Dripper)
	suite.Equal("V60", tasting.Dripper.Name)

	recorder = suite.do(http.MethodPut, fmt.Sprintf("/api/drippers/%d", dripper.ID), map[string]any{"manufacturer": "HARIO"})
	suite.Require().Equal(http.StatusOK, recorder.Code)
	suite.Equal("HARIO", *decode[api.DripperResponse](suite, recorder).Manufacturer)

	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodDelete, fmt.Sprintf("/api/drippers/%d", dripper.ID), nil).Code)

	recorder = suite.do(http.MethodGet, fmt.Sprintf("/api/tastings?filterId=%d", filter.ID), nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	tastings := decode[[]api.TastingResponse](suite, recorder)
	suite.Require().Len(tastings, 1)
	suite.Nil(tastings[0].DripperID)
}

func (suite *JournalTestSuite) TestStats() {
	bean := suite.createBean(map[string]any{"name": "ケニア", "price": 1500})
	suite.createBean(map[string]any{"name": "ブラジル", "price": 1200})
	suite.createTasting(map[string]any{"coffeeBeanId": bean.ID, "overallRating": 4})
	suite.createTasting(map[string]any{"coffeeBeanId": bean.ID, "overallRating": 5})

	recorder := suite.do(http.MethodGet, "/api/stats", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	stats := decode[api.StatsResponse](suite, recorder)
	suite.Equal(int64(2), stats.BeanCount)
	suite.Equal(int64(2), stats.InStockCount)
	suite.Equal(int64(2), stats.TastingCount)
	suite.True(decimal.NewFromInt(2700).Equal(stats.TotalSpent), stats.TotalSpent.String())
	suite.Require().NotNil(stats.AverageOverallRating)
	suite.InDelta(4.5, *stats.AverageOverallRating, 0.0001)
	suite.Require().Len(stats.TopBeans, 1)
	suite.Equal("ケニア", stats.TopBeans[0].Name)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/stats?top=-1", nil).Code)
}

func (suite *JournalTestSuite) TestUpload_StoreAndDelete() {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	suite.Require().NoError(writer.WriteField("category", "beans"))

	part, err := writer.CreateFormFile("file", "bag.png")
	suite.Require().NoError(err)

	_, err = part.Write(pngHeader)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	uploaded := decode[api.UploadResponse](suite, recorder)
	suite.True(uploaded.Success)
	suite.True(strings.HasPrefix(uploaded.ImagePath, "/images/beans/"))
	suite.True(strings.HasSuffix(uploaded.FileName, ".png"))

	recorder = suite.do(http.MethodGet, uploaded.ImagePath, nil)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.do(http.MethodDelete, "/api/upload", map[string]any{"path": uploaded.ImagePath})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	_, err = os.Stat(filepath.Join(suite.imageDir, "beans", uploaded.FileName))
	suite.ErrorIs(err, os.ErrNotExist)
}

func (suite *JournalTestSuite) TestUpload_OversizedBodyIsCutOff() {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	suite.Require().NoError(writer.WriteField("category", "beans"))

	part, err := writer.CreateFormFile("file", "huge.png")
	suite.Require().NoError(err)

	_, err = part.Write(append(pngHeader, bytes.Repeat([]byte{0}, 2<<20)...))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "1.0 MiB")

	entries, err := os.ReadDir(suite.imageDir)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *JournalTestSuite) TestUpload_DeleteNeedsImagePath() {
	category := filepath.Join(suite.imageDir, "beans")
	suite.Require().NoError(os.MkdirAll(category, 0o755))

	stray := filepath.Join(suite.imageDir, "notes.txt")
	suite.Require().NoError(os.WriteFile(stray, []byte("keep"), 0o600))

	for _, imagePath := range []string{"/images/beans", "/images/notes.txt", "/images/beans/"} {
		recorder := suite.do(http.MethodDelete, "/api/upload", map[string]any{"path": imagePath})

		suite.Equal(http.StatusBadRequest, recorder.Code, imagePath)
		suite.Equal("画像のパスが不正です", suite.errorMessage(recorder), imagePath)
	}

	_, err := os.Stat(category)
	suite.NoError(err)

	_, err = os.Stat(stray)
	suite.NoError(err)
}

func (suite *JournalTestSuite) TestUpload_MissingFile() {
	recorder := suite.do(http.MethodPost, "/api/upload", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(suite.errorMessage(recorder), "file")
}

func (suite *JournalTestSuite) TestUnknownRoute() {
	recorder := suite.do(http.MethodGet, "/api/teapots", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.NotEmpty(suite.errorMessage(recorder))

	logged := suite.observedLogs.FilterMessage("request").FilterField(zap.Int("status", http.StatusNotFound))
	suite.Equal(1, logged.Len())
}
