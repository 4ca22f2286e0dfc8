package models

import "math"

// PaginationParams พารามิเตอร์แบ่งหน้า + ค้นหา สำหรับรายการ vendor และ template
type PaginationParams struct {
	Page   int    `json:"page" query:"page"  example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`          // ค้นหาจากชื่อ (optional)
	SortBy string `json:"sortBy" query:"sortBy" example:"createdAt"` // ฟิลด์ที่ใช้เรียงลำดับ
	Order  string `json:"order" query:"order" example:"desc"`        // asc / desc
}

// PaginatedResponse ห่อรายการพร้อมข้อมูลหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าตั้งต้น: หน้าแรก 10 รายการ เรียงตามวันที่สร้าง
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		SortBy: "createdAt",
		Order:  "asc",
	}
}

// NewPaginatedResponse builds the page envelope around a query result.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip จำนวนรายการที่ข้ามก่อนถึงหน้าที่ขอ
func (p *PaginationParams) GetSkip() int64 {
	if p.Page < 1 {
		return 0
	}
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder sort document ตามฟิลด์และทิศทางที่ขอ
func (p *PaginationParams) GetSortOrder() map[string]int {
	field := p.SortBy
	if field == "" {
		field = "createdAt"
	}
	order := 1
	if p.Order == "desc" {
		order = -1
	}
	return map[string]int{field: order}
}
