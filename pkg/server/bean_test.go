package server_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/BrewLog/mocks"
	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server"
	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/validation"
)

var errDatabaseDown = errors.New("database down")

type BeanServerTestSuite struct {
	suite.Suite
	beanRepo     *mocks.BeanRepository
	tastingRepo  *mocks.TastingRepository
	lookup       *mocks.Integration
	engine       *gin.Engine
	observedLogs *observer.ObservedLogs
}

func TestBeanServerTestSuite(t *testing.T) {
	suite.Run(t, new(BeanServerTestSuite))
}

func (suite *BeanServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(api.RegisterValidations())

	suite.beanRepo = mocks.NewBeanRepository(suite.T())
	suite.tastingRepo = mocks.NewTastingRepository(suite.T())
	suite.lookup = mocks.NewIntegration(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)

	suite.engine = gin.New()
	server.NewBeanServer(suite.beanRepo, suite.lookup, observedLogger).Register(suite.engine.Group("/beans"))
	server.NewTastingServer(suite.tastingRepo, observedLogger).Register(suite.engine.Group("/tastings"))
}

func (suite *BeanServerTestSuite) serve(method string, path string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	return recorder
}

func (suite *BeanServerTestSuite) TestListBeans_PassesFilter() {
	filter := repository.BeanFilter{Status: pointy.String(model.StatusInStock), ShopID: pointy.Uint(3)}
	suite.beanRepo.EXPECT().ListBeans(mock.Anything, filter).Return([]*model.CoffeeBean{
		{Base: model.Base{ID: 1}, Name: "ケニア", Status: model.StatusInStock, Price: decimal.NewNullDecimal(decimal.NewFromInt(1500))},
	}, nil)

	recorder := suite.serve(http.MethodGet, "/beans?status=IN_STOCK&shopId=3", "")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"name":"ケニア"`)
	suite.Contains(recorder.Body.String(), `"price":"1500"`)
}

func (suite *BeanServerTestSuite) TestListBeans_InvalidQuery() {
	recorder := suite.serve(http.MethodGet, "/beans?status=OPEN", "")
	suite.Equal(http.StatusBadRequest, recorder.Code)

	recorder = suite.serve(http.MethodGet, "/beans?shopId=x", "")
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *BeanServerTestSuite) TestListBeans_RepositoryFailure() {
	suite.beanRepo.EXPECT().ListBeans(mock.Anything, repository.BeanFilter{}).Return(nil, errDatabaseDown)

	recorder := suite.serve(http.MethodGet, "/beans", "")

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.NotContains(recorder.Body.String(), "database down")

	logs := suite.observedLogs.FilterMessage("request failed")
	suite.Require().Equal(1, logs.Len())
	suite.Equal(errDatabaseDown.Error(), logs.All()[0].ContextMap()["error"])
}

func (suite *BeanServerTestSuite) TestAddBean_DefaultsToInStock() {
	created := &model.CoffeeBean{Base: model.Base{ID: 7}, Name: "ケニア", Status: model.StatusInStock}

	suite.beanRepo.EXPECT().AddBean(mock.Anything, mock.MatchedBy(func(bean model.CoffeeBean) bool {
		return bean.Name == "ケニア" && bean.Status == model.StatusInStock && bean.Notes == nil
	})).Return(created, nil)
	suite.beanRepo.EXPECT().GetBeanByID(mock.Anything, uint(7)).Return(created, nil)

	recorder := suite.serve(http.MethodPost, "/beans", `{"name":" ケニア ","notes":"  "}`)

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.Contains(recorder.Body.String(), `"status":"IN_STOCK"`)
}

func (suite *BeanServerTestSuite) TestAddBean_RejectsBody() {
	for _, body := range []string{"", "{", `{"name":1}`, `{"name":"ケニア","bodyScore":-1}`} {
		recorder := suite.serve(http.MethodPost, "/beans", body)

		suite.Equal(http.StatusBadRequest, recorder.Code, body)
	}
}

func (suite *BeanServerTestSuite) TestUpdateBeanStatus() {
	finished := &model.CoffeeBean{Base: model.Base{ID: 2}, Name: "ケニア", Status: model.StatusFinished, FinishedDate: pointy.Pointer(time.Now())}

	suite.beanRepo.EXPECT().UpdateBeanStatus(mock.Anything, uint(2), model.StatusFinished, mock.AnythingOfType("time.Time")).Return(finished, nil)
	suite.beanRepo.EXPECT().GetBeanByID(mock.Anything, uint(2)).Return(finished, nil)

	recorder := suite.serve(http.MethodPatch, "/beans/2", `{"status":"FINISHED"}`)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"status":"FINISHED"`)

	recorder = suite.serve(http.MethodPatch, "/beans/2", `{}`)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *BeanServerTestSuite) TestUpdateBean_NotFound() {
	suite.beanRepo.EXPECT().GetBeanByID(mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.serve(http.MethodPut, "/beans/5", `{"name":"ケニア"}`)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error":"コーヒー豆が見つかりません"}`, recorder.Body.String())
}

func (suite *BeanServerTestSuite) TestLookupBean() {
	suite.lookup.EXPECT().LookupBean(mock.Anything, "https://shop.example/kenya").Return(&model.BeanDraft{
		Name:      "ケニア AA",
		Price:     decimal.NewNullDecimal(decimal.NewFromInt(2000)),
		SourceURL: "https://shop.example/kenya",
		Source:    "web_product",
	}, nil)

	recorder := suite.serve(http.MethodPost, "/beans/lookup", `{"url":"https://shop.example/kenya"}`)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"name":"ケニア AA"`)
	suite.Contains(recorder.Body.String(), `"source":"web_product"`)
}

func (suite *BeanServerTestSuite) TestLookupBean_Failure() {
	suite.lookup.EXPECT().LookupBean(mock.Anything, "https://shop.example/404").Return(nil, errors.New("status 404"))

	recorder := suite.serve(http.MethodPost, "/beans/lookup", `{"url":"https://shop.example/404"}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("bean lookup failed").Len())
}

func (suite *BeanServerTestSuite) TestAddTasting_BeanNotInStock() {
	suite.tastingRepo.EXPECT().AddTasting(mock.Anything, mock.MatchedBy(func(tasting model.TastingEntry) bool {
		return tasting.CoffeeBeanID == 4 && !tasting.BrewDate.IsZero()
	})).Return(nil, validation.InvalidState("coffeeBeanId", "在庫中のコーヒー豆のみテイスティングを記録できます"))

	recorder := suite.serve(http.MethodPost, "/tastings", `{"coffeeBeanId":4}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "在庫中")
}

func (suite *BeanServerTestSuite) TestAddTasting_MissingBean() {
	recorder := suite.serve(http.MethodPost, "/tastings", `{"overallRating":4}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "coffeeBeanId")
}

func (suite *BeanServerTestSuite) TestListTastings_Filters() {
	suite.tastingRepo.EXPECT().ListTastings(mock.Anything, repository.TastingFilter{
		CoffeeBeanID: pointy.Uint(1),
		DripperID:    pointy.Uint(2),
	}).Return(nil, nil)

	recorder := suite.serve(http.MethodGet, "/tastings?coffeeBeanId=1&dripperId=2", "")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq("[]", recorder.Body.String())
}

func (suite *BeanServerTestSuite) TestGetTasting_NotFound() {
	suite.tastingRepo.EXPECT().GetTastingByID(mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.serve(http.MethodGet, "/tastings/9", "")

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error":"テイスティングが見つかりません"}`, recorder.Body.String())
}
