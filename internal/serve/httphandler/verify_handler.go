package httphandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stellar/go-stellar-sdk/support/http/httpdecode"
	"github.com/stellar/go-stellar-sdk/support/log"
	"github.com/stellar/go-stellar-sdk/support/render/httpjson"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	"github.com/yohaboy/cbe-verifier/internal/serve/httperror"
	"github.com/yohaboy/cbe-verifier/internal/serve/resultcache"
	"github.com/yohaboy/cbe-verifier/internal/serve/validators"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

type VerifyHandler struct {
	Verifier verifier.VerifierInterface
	// ResultCache is optional.
	ResultCache        resultcache.ResultCacheInterface
	CrashTrackerClient crashtracker.CrashTrackerClient
}

// PostVerify verifies the receipt identified by the JSON body {"reference", "account_suffix"}.
func (h VerifyHandler) PostVerify(rw http.ResponseWriter, req *http.Request) {
	var reqBody *validators.VerifyRequest
	if err := httpdecode.DecodeJSON(req, &reqBody); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httperror.RequestEntityTooLarge("", err, nil).Render(rw)
			return
		}
		httperror.BadRequest("", err, nil).Render(rw)
		return
	}

	h.verify(rw, req, reqBody)
}

// GetVerify verifies the receipt identified by the {reference} and {account_suffix} URL params.
func (h VerifyHandler) GetVerify(rw http.ResponseWriter, req *http.Request) {
	h.verify(rw, req, &validators.VerifyRequest{
		Reference:     chi.URLParam(req, "reference"),
		AccountSuffix: chi.URLParam(req, "account_suffix"),
	})
}

func (h VerifyHandler) verify(rw http.ResponseWriter, req *http.Request, reqBody *validators.VerifyRequest) {
	ctx := req.Context()

	validator := validators.NewVerifyRequestValidator()
	reqBody = validator.ValidateVerifyRequest(reqBody)
	if validator.HasErrors() {
		httperror.BadRequest("Invalid input parameters", nil, validator.Errors).Render(rw)
		return
	}

	if h.ResultCache != nil {
		if result, found := h.ResultCache.Get(ctx, reqBody.Reference, reqBody.AccountSuffix); found {
			log.Ctx(ctx).Debug("serving verification result from the cache")
			httpjson.RenderStatus(rw, http.StatusOK, result, httpjson.JSON)
			return
		}
	}

	result := h.Verifier.Verify(ctx, reqBody.Reference, reqBody.AccountSuffix)

	if h.ResultCache != nil {
		h.ResultCache.Set(ctx, reqBody.Reference, reqBody.AccountSuffix, result)
	}
	h.reportProcessingError(ctx, result)

	httpjson.RenderStatus(rw, StatusCodeForResult(result), result, httpjson.JSON)
}

func (h VerifyHandler) reportProcessingError(ctx context.Context, result verifier.Result) {
	if result.Success || result.ErrorKind != verifier.ErrorKindProcessingError || h.CrashTrackerClient == nil {
		return
	}
	h.CrashTrackerClient.LogAndReportMessages(ctx, "receipt verification failed: "+result.ErrorMessage)
}

// StatusCodeForResult maps a verification result to the HTTP status of its response.
func StatusCodeForResult(result verifier.Result) int {
	if result.Success {
		return http.StatusOK
	}

	switch result.ErrorKind {
	case verifier.ErrorKindInvalidInput:
		return http.StatusBadRequest
	case verifier.ErrorKindBankServerError, verifier.ErrorKindMaxRetriesReached:
		return http.StatusBadGateway
	case verifier.ErrorKindNetworkError:
		return http.StatusGatewayTimeout
	case verifier.ErrorKindProcessingError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
