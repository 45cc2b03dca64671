package content

import "slices"

// PublishedFlag marks a record whose live fields are authoritative.
const PublishedFlag = "1"

// SelectByPublish returns published when isPublish is "1" and temp otherwise.
func SelectByPublish[T any](isPublish string, published, temp T) T {
	if isPublish == PublishedFlag {
		return published
	}
	return temp
}

// HomepageConfig mirrors /crm-website/homepageConfig/{display,preview}.
type HomepageConfig struct {
	IsPublish string `json:"isPublish"`

	CarouselImageLists []CarouselImage `json:"carouselImageLists"`
	MainProducts       []MainProduct   `json:"mainProducts"`
	TypicalCustomer    TypicalCustomer `json:"typicalCustomer"`

	CarouselImageListsTemp []CarouselImage `json:"carouselImageListsTemp"`
	MainProductsTemp       []MainProduct   `json:"mainProductsTemp"`
	TypicalCustomerTemp    TypicalCustomer `json:"typicalCustomerTemp"`
}

// CarouselImage is one homepage banner.
type CarouselImage struct {
	ID        int64  `json:"id" yaml:"id"`
	ImageURL  string `json:"imageUrl" yaml:"imageUrl"`
	ImageName string `json:"imageName" yaml:"imageName"`
	LinkURL   string `json:"linkUrl" yaml:"linkUrl"`
	Sort      int    `json:"sort" yaml:"sort"`
}

// MainProduct is a featured product tile on the homepage.
type MainProduct struct {
	ID          int64  `json:"id" yaml:"id"`
	ProductName string `json:"productName" yaml:"productName"`
	ProductDesc string `json:"productDesc" yaml:"productDesc"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
}

// TypicalCustomer is the customer logo wall.
type TypicalCustomer struct {
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
}

// Published reports whether the live fields are authoritative.
func (h HomepageConfig) Published() bool {
	return h.IsPublish == PublishedFlag
}

// CarouselImages returns the authoritative banner list.
func (h HomepageConfig) CarouselImages() []CarouselImage {
	return SelectByPublish(h.IsPublish, h.CarouselImageLists, h.CarouselImageListsTemp)
}

// MainProductList returns the authoritative featured products.
func (h HomepageConfig) MainProductList() []MainProduct {
	return SelectByPublish(h.IsPublish, h.MainProducts, h.MainProductsTemp)
}

// Customer returns the authoritative typical customer section.
func (h HomepageConfig) Customer() TypicalCustomer {
	return SelectByPublish(h.IsPublish, h.TypicalCustomer, h.TypicalCustomerTemp)
}

// Clone returns a copy that shares no slices with h.
func (h HomepageConfig) Clone() HomepageConfig {
	dup := h
	dup.CarouselImageLists = slices.Clone(h.CarouselImageLists)
	dup.MainProducts = slices.Clone(h.MainProducts)
	dup.CarouselImageListsTemp = slices.Clone(h.CarouselImageListsTemp)
	dup.MainProductsTemp = slices.Clone(h.MainProductsTemp)
	return dup
}

// HomepageView is the publish-resolved homepage.
type HomepageView struct {
	Published       bool            `json:"published" yaml:"published"`
	CarouselImages  []CarouselImage `json:"carouselImages" yaml:"carouselImages"`
	MainProducts    []MainProduct   `json:"mainProducts" yaml:"mainProducts"`
	TypicalCustomer TypicalCustomer `json:"typicalCustomer" yaml:"typicalCustomer"`
}

// Resolved applies the publish flag to every section.
func (h HomepageConfig) Resolved() HomepageView {
	return HomepageView{
		Published:       h.Published(),
		CarouselImages:  h.CarouselImages(),
		MainProducts:    h.MainProductList(),
		TypicalCustomer: h.Customer(),
	}
}

// Category selects one of the two product lines.
type Category int

const (
	CategoryLLM Category = iota
	CategoryDevice
)

// Categories lists product lines in display order.
var Categories = []Category{CategoryLLM, CategoryDevice}

func (c Category) String() string {
	switch c {
	case CategoryLLM:
		return "LLM"
	case CategoryDevice:
		return "Device"
	default:
		return "Unknown"
	}
}

// ProductConfig mirrors /crm-website/productConfig/{display,preview}.
type ProductConfig struct {
	IsPublish string `json:"isPublish"`

	LLMBasicInfo           ProductBasicInfo      `json:"txwxLLMProductBasicInfo"`
	DeviceBasicInfo        ProductBasicInfo      `json:"txwxDeviceProductBasicInfo"`
	LLMScenarios           []ApplicationScenario `json:"txwxLLMApplicationScenarios"`
	DeviceScenarios        []ApplicationScenario `json:"txwxDeviceApplicationScenarios"`
	LLMCaseProducts        []CaseProduct         `json:"txwxLLMTypicalCaseProducts"`
	DeviceCaseProducts     []CaseProduct         `json:"txwxDeviceTypicalCaseProducts"`
	LLMBasicInfoTemp       ProductBasicInfo      `json:"txwxLLMProductBasicInfoTemp"`
	DeviceBasicInfoTemp    ProductBasicInfo      `json:"txwxDeviceProductBasicInfoTemp"`
	LLMScenariosTemp       []ApplicationScenario `json:"txwxLLMApplicationScenariosTemp"`
	DeviceScenariosTemp    []ApplicationScenario `json:"txwxDeviceApplicationScenariosTemp"`
	LLMCaseProductsTemp    []CaseProduct         `json:"txwxLLMTypicalCaseProductsTemp"`
	DeviceCaseProductsTemp []CaseProduct         `json:"txwxDeviceTypicalCaseProductsTemp"`
}

// ProductBasicInfo is the headline block of a product line.
type ProductBasicInfo struct {
	ID          int64  `json:"id" yaml:"id"`
	ProductName string `json:"productName" yaml:"productName"`
	ProductDesc string `json:"productDesc" yaml:"productDesc"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
}

// ApplicationScenario describes where a product line is used.
type ApplicationScenario struct {
	ScenarioID   int64  `json:"scenarioId" yaml:"scenarioId"`
	ScenarioName string `json:"scenarioName" yaml:"scenarioName"`
	ScenarioDesc string `json:"scenarioDesc" yaml:"scenarioDesc"`
	ImageURL     string `json:"imageUrl" yaml:"imageUrl"`
}

// CaseProduct is a typical customer case for a product line.
type CaseProduct struct {
	CaseProductID int64  `json:"caseProductId" yaml:"caseProductId"`
	ProductName   string `json:"productName" yaml:"productName"`
	ProductDesc   string `json:"productDesc" yaml:"productDesc"`
	ImageURL      string `json:"imageUrl" yaml:"imageUrl"`
}

// Published reports whether the live fields are authoritative.
func (p ProductConfig) Published() bool {
	return p.IsPublish == PublishedFlag
}

// BasicInfo returns the authoritative basic info for a category.
func (p ProductConfig) BasicInfo(c Category) ProductBasicInfo {
	if c == CategoryDevice {
		return SelectByPublish(p.IsPublish, p.DeviceBasicInfo, p.DeviceBasicInfoTemp)
	}
	return SelectByPublish(p.IsPublish, p.LLMBasicInfo, p.LLMBasicInfoTemp)
}

// Scenarios returns the authoritative application scenarios for a category.
func (p ProductConfig) Scenarios(c Category) []ApplicationScenario {
	if c == CategoryDevice {
		return SelectByPublish(p.IsPublish, p.DeviceScenarios, p.DeviceScenariosTemp)
	}
	return SelectByPublish(p.IsPublish, p.LLMScenarios, p.LLMScenariosTemp)
}

// CaseProducts returns the authoritative typical case products for a category.
func (p ProductConfig) CaseProducts(c Category) []CaseProduct {
	if c == CategoryDevice {
		return SelectByPublish(p.IsPublish, p.DeviceCaseProducts, p.DeviceCaseProductsTemp)
	}
	return SelectByPublish(p.IsPublish, p.LLMCaseProducts, p.LLMCaseProductsTemp)
}

// Clone returns a copy that shares no slices with p.
func (p ProductConfig) Clone() ProductConfig {
	dup := p
	dup.LLMScenarios = slices.Clone(p.LLMScenarios)
	dup.DeviceScenarios = slices.Clone(p.DeviceScenarios)
	dup.LLMCaseProducts = slices.Clone(p.LLMCaseProducts)
	dup.DeviceCaseProducts = slices.Clone(p.DeviceCaseProducts)
	dup.LLMScenariosTemp = slices.Clone(p.LLMScenariosTemp)
	dup.DeviceScenariosTemp = slices.Clone(p.DeviceScenariosTemp)
	dup.LLMCaseProductsTemp = slices.Clone(p.LLMCaseProductsTemp)
	dup.DeviceCaseProductsTemp = slices.Clone(p.DeviceCaseProductsTemp)
	return dup
}

// CategoryView is one publish-resolved product line.
type CategoryView struct {
	BasicInfo    ProductBasicInfo      `json:"basicInfo" yaml:"basicInfo"`
	Scenarios    []ApplicationScenario `json:"applicationScenarios" yaml:"applicationScenarios"`
	CaseProducts []CaseProduct         `json:"typicalCaseProducts" yaml:"typicalCaseProducts"`
}

// ProductView is the publish-resolved product configuration.
type ProductView struct {
	Published bool         `json:"published" yaml:"published"`
	LLM       CategoryView `json:"llm" yaml:"llm"`
	Device    CategoryView `json:"device" yaml:"device"`
}

// Category resolves a single product line.
func (p ProductConfig) Category(c Category) CategoryView {
	return CategoryView{
		BasicInfo:    p.BasicInfo(c),
		Scenarios:    p.Scenarios(c),
		CaseProducts: p.CaseProducts(c),
	}
}

// Resolved applies the publish flag to both product lines.
func (p ProductConfig) Resolved() ProductView {
	return ProductView{
		Published: p.Published(),
		LLM:       p.Category(CategoryLLM),
		Device:    p.Category(CategoryDevice),
	}
}
