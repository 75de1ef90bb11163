package pagination

import "strconv"

// ページ番号ボタン列の1要素。Gapがtrueなら省略記号。
type Entry struct {
	Page int
	Gap  bool
}

// UIへはそのまま数値か"..."で返す
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Gap {
		return []byte(`"..."`), nil
	}
	return []byte(strconv.Itoa(e.Page)), nil
}

func (e Entry) String() string {
	if e.Gap {
		return "..."
	}
	return strconv.Itoa(e.Page)
}

const DefaultMaxButtons = 5

// Window は現在ページ周辺のページ番号列を組み立てる。
//   - total <= 1 : 空
//   - total <= maxButtons : 1..total を全部
//   - それ以外: 先頭・末尾は常に表示し、currentの前後1ページを
//     [2, total-1] に収めて挟む。隙間が2以上あるところだけ省略記号。
func Window(current, total, maxButtons int) []Entry {
	if total <= 1 {
		return []Entry{}
	}
	if maxButtons <= 0 {
		maxButtons = DefaultMaxButtons
	}
	if total <= maxButtons {
		out := make([]Entry, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, Entry{Page: p})
		}
		return out
	}

	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	left := current - 1
	if left < 2 {
		left = 2
	}
	right := current + 1
	if right > total-1 {
		right = total - 1
	}

	out := make([]Entry, 0, maxButtons+2)
	out = append(out, Entry{Page: 1})
	if left > 2 {
		out = append(out, Entry{Gap: true})
	}
	for p := left; p <= right; p++ {
		out = append(out, Entry{Page: p})
	}
	if right < total-1 {
		out = append(out, Entry{Gap: true})
	}
	out = append(out, Entry{Page: total})
	return out
}
