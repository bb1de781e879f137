package morphology

import (
	"fmt"
	"strings"
)

// 세종 품사 태그 (mecab-ko-dic)
const (
	TagE       Tag = "E"   // 어미 (EP, EF, EC, ETN, ETM are folded here)
	TagIC      Tag = "IC"  // 감탄사
	TagJ       Tag = "J"   // 조사 (JKS, JKC, JKG, JKO, JKB, JKV, JKQ, JX, JC are folded here)
	TagMAG     Tag = "MAG" // 일반 부사
	TagMAJ     Tag = "MAJ" // 접속 부사
	TagMM      Tag = "MM"  // 관형사
	TagNNG     Tag = "NNG" // 일반 명사
	TagNNP     Tag = "NNP" // 고유 명사
	TagNNB     Tag = "NNB" // 의존 명사
	TagNNBC    Tag = "NNBC"
	TagNP      Tag = "NP" // 대명사
	TagNR      Tag = "NR" // 수사
	TagSF      Tag = "SF"
	TagSH      Tag = "SH" // 한자
	TagSL      Tag = "SL" // 외국어
	TagSN      Tag = "SN" // 숫자
	TagSP      Tag = "SP" // 공백
	TagSSC     Tag = "SSC"
	TagSSO     Tag = "SSO"
	TagSC      Tag = "SC"
	TagSY      Tag = "SY"
	TagSE      Tag = "SE"
	TagVA      Tag = "VA"  // 형용사
	TagVCN     Tag = "VCN" // 부정 지정사
	TagVCP     Tag = "VCP" // 긍정 지정사
	TagVV      Tag = "VV"  // 동사
	TagVX      Tag = "VX"  // 보조 용언
	TagXPN     Tag = "XPN"
	TagXR      Tag = "XR"
	TagXSA     Tag = "XSA"
	TagXSN     Tag = "XSN"
	TagXSV     Tag = "XSV"
	TagUNA     Tag = "UNA"
	TagNA      Tag = "NA"
	TagVSV     Tag = "VSV"
	TagUNKNOWN Tag = "UNKNOWN"
)

var sejongTags = []Tag{
	TagE, TagIC, TagJ, TagMAG, TagMAJ, TagMM, TagNNG, TagNNP, TagNNB, TagNNBC,
	TagNP, TagNR, TagSF, TagSH, TagSL, TagSN, TagSP, TagSSC, TagSSO, TagSC,
	TagSY, TagSE, TagVA, TagVCN, TagVCP, TagVV, TagVX, TagXPN, TagXR, TagXSA,
	TagXSN, TagXSV, TagUNA, TagNA, TagVSV, TagUNKNOWN,
}

// SejongCatalog is the Korean tag set. Names are matched case-insensitively
// and every J* / E* sub-tag resolves to J / E.
var SejongCatalog Catalog = sejongCatalog{tags: NewTagSet(sejongTags...)}

type sejongCatalog struct {
	tags TagSet
}

func (c sejongCatalog) Tags() TagSet {
	return c.tags.Clone()
}

func (c sejongCatalog) Resolve(name string) (Tag, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(upper, "J"):
		return TagJ, nil
	case strings.HasPrefix(upper, "E"):
		return TagE, nil
	}
	t := Tag(upper)
	if !c.tags.Contains(t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return t, nil
}
