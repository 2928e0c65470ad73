package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"sqlapp/internal/core"
	"sqlapp/internal/http/handler"
	"sqlapp/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UserHandler", func() {
	var (
		uh            *handler.UserHandler
		mux           *http.ServeMux
		fakeService   *fake.UserService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	newRequest := func(method, target, body string) *http.Request {
		var r *http.Request
		if body == "" {
			r = httptest.NewRequest(method, target, nil)
		} else {
			r = httptest.NewRequest(method, target, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
		}
		r.Header.Set(handler.APITokenHeader, testToken)
		return r
	}

	detail := func() string {
		var resp handler.ErrorResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp.Detail
	}

	BeforeEach(func() {
		testToken = "0123456789abcdef0123456789abcdef"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()

		fakeService = new(fake.UserService)
		fakeService.TokenExistsReturns(true, nil)
		fakeService.ResolveTokenReturns(7, true, nil)

		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		uh = handler.NewUserHandler(fakeLogger, fakeValidator, fakeService)
		mux = http.NewServeMux()
		uh.Register(mux)
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
	})

	Describe("health check", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/health-check", nil)
		})

		It("should report ok without a token", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
			Expect(fakeService.TokenExistsCallCount()).To(BeZero())
		})
	})

	Describe("HandleCreateUser", func() {
		BeforeEach(func() {
			req = newRequest("POST", "/users/", `{"email":"deadpool@example.com","password":"chimichangas4life"}`)
			fakeService.CreateUserReturns(core.User{
				ID:       1,
				Email:    "deadpool@example.com",
				APIToken: testToken,
				IsActive: true,
				Items:    []core.Item{{ID: 3, Title: "stray", Owner: core.OwnedBy(1)}},
			}, nil)
		})

		When("registration succeeds", func() {
			It("should return the user with its token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(fmt.Sprintf(`{
					"id":1,"email":"deadpool@example.com","is_active":true,"api_token":%q,
					"items":[{"id":3,"title":"stray","description":"","owner_id":1}]
				}`, testToken)))

				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
				Expect(fakeService.CreateUserCallCount()).To(Equal(1))
				_, msg := fakeService.CreateUserArgsForCall(0)
				Expect(msg).To(Equal(core.NewUser{Email: "deadpool@example.com", Password: "chimichangas4life"}))
				Expect(fakeService.TokenExistsCallCount()).To(BeZero())
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(detail()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.CreateUserCallCount()).To(BeZero())
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeService.CreateUserReturns(core.User{}, fmt.Errorf("create user: %w", core.ErrDuplicateEmail))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(detail()).To(Equal("Email already registered"))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeService.CreateUserReturns(core.User{}, fakeErr)
			})

			It("should hide the error behind status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(detail()).To(Equal("Internal server error"))
			})
		})
	})

	Describe("token gate", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/users/", "")
		})

		When("the token is unknown or inactive", func() {
			BeforeEach(func() {
				fakeService.TokenExistsReturns(false, nil)
			})

			It("should return status 404 with the token message", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(detail()).To(Equal("API Token not found or not active"))
				Expect(fakeService.ListUsersCallCount()).To(BeZero())
				_, token := fakeService.TokenExistsArgsForCall(0)
				Expect(token).To(Equal(testToken))
			})
		})

		When("the header is missing", func() {
			BeforeEach(func() {
				req.Header.Del(handler.APITokenHeader)
				fakeService.TokenExistsReturns(false, nil)
			})

			It("should check the empty token and reject it", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				_, token := fakeService.TokenExistsArgsForCall(0)
				Expect(token).To(BeEmpty())
			})
		})

		When("several users share the token", func() {
			BeforeEach(func() {
				fakeService.TokenExistsReturns(false, fmt.Errorf("resolve token: %w", core.ErrIntegrityViolation))
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(detail()).To(Equal("Internal server error"))
			})
		})
	})

	Describe("HandleListUsers", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/users/?skip=1&limit=2", "")
			fakeService.ListUsersReturns([]core.User{
				{ID: 2, Email: "b@example.com", IsActive: true},
				{ID: 3, Email: "c@example.com", IsActive: false},
			}, nil)
		})

		It("should pass the page and hide tokens", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[
				{"id":2,"email":"b@example.com","is_active":true,"items":[]},
				{"id":3,"email":"c@example.com","is_active":false,"items":[]}
			]`))
			_, page := fakeService.ListUsersArgsForCall(0)
			Expect(page).To(Equal(core.Page{Skip: 1, Limit: 2}))
		})

		When("no paging is given", func() {
			BeforeEach(func() {
				req = newRequest("GET", "/users/", "")
			})

			It("should use the defaults", func() {
				_, page := fakeService.ListUsersArgsForCall(0)
				Expect(page).To(Equal(core.Page{Skip: 0, Limit: 100}))
			})
		})

		When("paging is invalid", func() {
			BeforeEach(func() {
				req = newRequest("GET", "/users/?limit=-1", "")
			})

			It("should return status 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(fakeService.ListUsersCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/users/5", "")
			fakeService.GetUserReturns(core.User{ID: 5, Email: "e@example.com", IsActive: true}, nil)
		})

		It("should return the user", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id := fakeService.GetUserArgsForCall(0)
			Expect(id).To(Equal(uint(5)))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.User{}, core.ErrNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(detail()).To(Equal("User not found"))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req = newRequest("GET", "/users/abc", "")
			})

			It("should return status 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(fakeService.GetUserCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleCreateItem", func() {
		BeforeEach(func() {
			req = newRequest("POST", "/users/4/items/", `{"title":"Ryan Reynolds","description":"actor"}`)
			fakeService.CreateItemReturns(core.Item{ID: 9, Title: "Ryan Reynolds", Description: "actor", Owner: core.OwnedBy(4)}, nil)
		})

		It("should create the item for the path user", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"id":9,"title":"Ryan Reynolds","description":"actor","owner_id":4}`))
			_, ownerID, msg := fakeService.CreateItemArgsForCall(0)
			Expect(ownerID).To(Equal(uint(4)))
			Expect(msg).To(Equal(core.NewItem{Title: "Ryan Reynolds", Description: "actor"}))
		})

		When("the owner is inactive", func() {
			BeforeEach(func() {
				fakeService.CreateItemReturns(core.Item{}, fmt.Errorf("create item: %w", core.ErrUserInactive))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(detail()).To(Equal("User is not active"))
			})
		})

		When("the owner does not exist", func() {
			BeforeEach(func() {
				fakeService.CreateItemReturns(core.Item{}, fmt.Errorf("create item: %w", core.ErrNotFound))
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(detail()).To(Equal("User not found"))
			})
		})
	})

	Describe("HandleListItems", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/items/?limit=1", "")
			fakeService.ListItemsReturns([]core.Item{{ID: 1, Title: "orphan", Owner: core.Unowned()}}, nil)
		})

		It("should render unowned items with a null owner", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[{"id":1,"title":"orphan","description":"","owner_id":null}]`))
			_, page := fakeService.ListItemsArgsForCall(0)
			Expect(page).To(Equal(core.Page{Skip: 0, Limit: 1}))
		})
	})

	Describe("HandleListMyItems", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/me/items/", "")
			fakeService.ListOwnerItemsReturns([]core.Item{{ID: 2, Title: "mine", Owner: core.OwnedBy(7)}}, nil)
		})

		It("should list the items of the token's user", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.TokenExistsCallCount()).To(BeZero())
			_, ownerID, page := fakeService.ListOwnerItemsArgsForCall(0)
			Expect(ownerID).To(Equal(uint(7)))
			Expect(page).To(Equal(core.Page{Skip: 0, Limit: 100}))
		})

		When("the token does not resolve", func() {
			BeforeEach(func() {
				fakeService.ResolveTokenReturns(0, false, nil)
			})

			It("should return status 404 with the token message", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(detail()).To(Equal("API Token not found or not active"))
				Expect(fakeService.ListOwnerItemsCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleDeactivateUser", func() {
		BeforeEach(func() {
			req = newRequest("POST", "/delete_user/2", "")
			fakeService.DeactivateUserReturns(core.User{ID: 2, Email: "b@example.com", IsActive: false}, nil)
		})

		It("should return the deactivated user", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"id":2,"email":"b@example.com","is_active":false,"items":[]}`))
			_, id := fakeService.DeactivateUserArgsForCall(0)
			Expect(id).To(Equal(uint(2)))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.DeactivateUserReturns(core.User{}, fmt.Errorf("deactivate user 2: %w", core.ErrNotFound))
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(detail()).To(Equal("User not found"))
			})
		})

		When("called with GET", func() {
			BeforeEach(func() {
				req = newRequest("GET", "/delete_user/2", "")
			})

			It("should not be routed", func() {
				Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
				Expect(fakeService.DeactivateUserCallCount()).To(BeZero())
			})
		})
	})
})
