package handler

import "github.com/freelancehub/job-board/internal/core/domain"

func toJobResponse(j *domain.Job) jobResponse {
	resp := jobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Category:    string(j.Category),
		Budget:      budgetResponse{Min: j.Budget.Min, Max: j.Budget.Max},
		Status:      j.Status,
		CreatedAt:   j.CreatedAt.UTC(),
	}
	if j.Client != nil {
		resp.Client = &clientResponse{Name: j.Client.Name, Email: j.Client.Email}
	}
	return resp
}

func toListJobsResponse(jobs []*domain.Job) listJobsResponse {
	items := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = toJobResponse(j)
	}
	return listJobsResponse{Success: true, Jobs: items}
}
