package contenthdl

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "ecojourney/internal/api/base/handler"
	contentsvc "ecojourney/internal/api/content/service"
	"ecojourney/internal/common"
	"ecojourney/internal/utility"
)

const downloadTimeout = 60 * time.Second

// DownloadHandler proxy tải file của nội dung từ dịch vụ lưu trữ ngoài
type DownloadHandler struct {
	contentService *contentsvc.ContentService
	httpClient     *http.Client
}

// NewDownloadHandler tạo mới DownloadHandler
func NewDownloadHandler() (*DownloadHandler, error) {
	contentService, err := contentsvc.NewContentService()
	if err != nil {
		return nil, err
	}
	return &DownloadHandler{
		contentService: contentService,
		httpClient:     &http.Client{Timeout: downloadTimeout},
	}, nil
}

// HandleDownload stream file của nội dung về client kèm header tải xuống.
// File nằm ở dịch vụ lưu trữ ngoài, handler chỉ proxy lại response.
func (h *DownloadHandler) HandleDownload(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		basehdl.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}

	item, err := h.contentService.FindOneById(c.Context(), utility.String2ObjectID(id))
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}
	if item.FileURL == "" {
		basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Nội dung không có file để tải xuống", common.StatusNotFound, nil))
		return nil
	}

	req, err := http.NewRequestWithContext(c.Context(), http.MethodGet, item.FileURL, nil)
	if err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeDelivery, "Không tạo được yêu cầu tải file", common.StatusBadGateway, err))
		return nil
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeDelivery, "Không tải được file từ dịch vụ lưu trữ", common.StatusBadGateway, err))
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeDelivery,
			fmt.Sprintf("Dịch vụ lưu trữ trả về mã %d", resp.StatusCode), common.StatusBadGateway, nil))
		return nil
	}

	fileName := item.FileName
	if fileName == "" {
		fileName = item.Title
	}
	contentType := item.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	if resp.ContentLength > 0 {
		return c.SendStream(resp.Body, int(resp.ContentLength))
	}
	return c.SendStream(resp.Body)
}
