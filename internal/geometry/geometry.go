package geometry

// Ring - замкнутый контур полигона в формате GeoJSON: [[lon, lat], ...].
// Первая вершина неявно замыкает контур, поэтому открытый контур
// (последняя вершина != первой) трактуется как замкнутый.
type Ring [][2]float64

// Valid сообщает, пригоден ли контур для проверки принадлежности точки.
// Контур с менее чем тремя вершинами вырожден.
func (r Ring) Valid() bool {
	return len(r) >= 3
}

// Contains проверяет принадлежность точки полигону методом трассировки луча
// (правило четности пересечений). Для вырожденного контура всегда false.
//
// Точка, лежащая ровно на ребре, может попасть как внутрь, так и наружу -
// поведение на границе не гарантируется в обе стороны. Это известная
// неоднозначность алгоритма, зафиксированная тестом, а не произвольно
// выбранное соглашение.
//
// Функция чистая и безопасна для параллельных вызовов.
func Contains(lon, lat float64, ring Ring) bool {
	if !ring.Valid() {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i, j = i+1, i {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		// Горизонтальный луч из точки на восток пересекает ребро (i, j)?
		if (yi > lat) != (yj > lat) &&
			lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
