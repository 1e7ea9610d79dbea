package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wook89/movie-search/internal/catalog"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, err := requiredParam(r, "q")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	page, err := intParam(r, "page", 1)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	result, err := s.catalog.Search(r.Context(), catalog.SearchQuery{
		Query:    query,
		Language: stringParam(r, "lang", s.catalog.DefaultLanguage()),
		Page:     page,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	prefix, err := requiredParam(r, "prefix")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	limit, err := intParam(r, "limit", defaultLimit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	result, err := s.catalog.Autocomplete(r.Context(), catalog.AutocompleteQuery{
		Prefix:   prefix,
		Language: stringParam(r, "lang", s.catalog.DefaultLanguage()),
		Limit:    limit,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultLimit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	result, err := s.catalog.Rankings(r.Context(), catalog.RankingsQuery{
		MediaType: stringParam(r, "media_type", string(catalog.KindMovie)),
		ListType:  stringParam(r, "list_type", catalog.ListPopular),
		Region:    stringParam(r, "region", s.catalog.DefaultRegion()),
		Language:  stringParam(r, "lang", s.catalog.DefaultLanguage()),
		Limit:     limit,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := int64Value("item_id", vars["item_id"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	result, err := s.catalog.Details(r.Context(), catalog.DetailsQuery{
		MediaType: vars["media_type"],
		ID:        id,
		Language:  stringParam(r, "lang", s.catalog.DefaultLanguage()),
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
