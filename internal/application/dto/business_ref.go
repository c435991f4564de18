package dto

import "encoding/json"

// BusinessRef normaliza la referencia a un negocio en payloads de membresía.
// Clientes antiguos envían el id plano ("business": "uuid") y los nuevos el
// objeto denormalizado ("business": {"id": "...", "name": "...", "logo": "..."}).
// Se aceptan ambas formas aquí, en el borde de decodificación, para que el
// resto del código solo vea la forma normalizada.
type BusinessRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Logo string `json:"logo,omitempty"`
}

// UnmarshalJSON acepta un string (id plano) o un objeto con campo id.
func (r *BusinessRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = BusinessRef{ID: id}
		return nil
	}
	type plain BusinessRef // evita recursión
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = BusinessRef(p)
	return nil
}
