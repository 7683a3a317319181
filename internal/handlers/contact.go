package handlers

import "net/http"

func (s *Server) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	s.writeCachedJSON(w, r, "contact:info", func() interface{} {
		return s.Catalog.ContactInfo()
	})
}
