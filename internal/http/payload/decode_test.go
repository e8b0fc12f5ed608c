package payload_test

import (
	"net/http"
	"net/http/httptest"
	"signup/internal/core"
	"signup/internal/http/payload"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeSignupForm", func() {
	var (
		req         *http.Request
		body        string
		contentType string
		result payload.SignupRequest
		err    error
	)

	BeforeEach(func() {
		body = "username=alice&email=alice%40example.com&password=s3cr%26t"
		contentType = "application/x-www-form-urlencoded"
	})

	JustBeforeEach(func() {
		req = httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		result, err = payload.DecodeSignupForm(req)
	})

	When("the form is well formed", func() {
		It("should decode all fields", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(payload.SignupRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "s3cr&t",
			}))
		})
	})

	When("fields are missing", func() {
		BeforeEach(func() {
			body = "username=alice"
		})

		It("should return a missing field error", func() {
			Expect(err).To(MatchError(payload.ErrMissingField))
			Expect(err).To(MatchError(ContainSubstring(`"email"`)))
			Expect(result).To(Equal(payload.SignupRequest{}))
		})
	})

	When("fields are present but empty", func() {
		BeforeEach(func() {
			body = "username=alice&email=&password="
		})

		It("should keep the empty values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(payload.SignupRequest{
				Username: "alice",
				Email:    "",
				Password: "",
			}))
		})
	})

	When("the body is not form encoded", func() {
		BeforeEach(func() {
			body = `{"username":"alice","email":"alice@example.com","password":"secret"}`
			contentType = "application/json"
		})

		It("should return a missing field error", func() {
			Expect(err).To(MatchError(payload.ErrMissingField))
		})
	})

	When("the body is not valid url encoding", func() {
		BeforeEach(func() {
			body = "username=%zz"
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("decoding form payload")))
		})
	})
})

var _ = Describe("SignupRequest", func() {
	It("should convert to a core message without changing values", func() {
		req := payload.SignupRequest{
			Username: "carol",
			Email:    "carol@example.com",
			Password: " spaced ",
		}
		Expect(req.ToCoreSignupMessage()).To(Equal(core.SignupMessage{
			Username: "carol",
			Email:    "carol@example.com",
			Password: " spaced ",
		}))
	})
})
